// Package util holds small generic helpers shared across packages.
package util

// Ptr returns a pointer to v. Handy for the optional config fields that
// distinguish "unset" from a zero value.
func Ptr[T any](v T) *T {
	return &v
}

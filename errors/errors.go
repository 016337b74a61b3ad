// Package errors provides error handling for autodoc.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnsupportedLanguage) {
//	    // handle unknown extension
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the documentation pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnsupportedLanguage indicates the file extension is not in the
	// extension-to-grammar mapping. Fatal for a run: no partial output.
	ErrUnsupportedLanguage = New("unsupported language")

	// ErrGenerationFailure indicates the text-generation collaborator could
	// not produce text for a node. Recovered locally via fallback
	// summarization; never fatal for a run.
	ErrGenerationFailure = New("generation failure")

	// ErrMalformedTree indicates a class-like node lacks a recognizable body
	// child or a declaration lacks a name field. The enrichment that needed
	// the missing structure is skipped.
	ErrMalformedTree = New("malformed syntax tree")
)

// IsGenerationFailure checks if an error is or wraps ErrGenerationFailure.
func IsGenerationFailure(err error) bool {
	return err != nil && Is(err, ErrGenerationFailure)
}

// IsUnsupportedLanguage checks if an error is or wraps ErrUnsupportedLanguage.
func IsUnsupportedLanguage(err error) bool {
	return err != nil && Is(err, ErrUnsupportedLanguage)
}

// NewGenerationFailure creates a generation-failure error with a formatted message.
func NewGenerationFailure(format string, args ...interface{}) error {
	return Wrap(ErrGenerationFailure, Newf(format, args...).Error())
}

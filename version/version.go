// Package version exposes build metadata stamped in via ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time with -ldflags "-X ...".
var (
	// CommitHash is the git commit the binary was built from.
	CommitHash = "dev"

	// BuildTime is the build timestamp.
	BuildTime = "unknown"

	// Version is the semantic version when built from a tag.
	Version = "dev"
)

// Info is a snapshot of the build metadata plus the runtime platform.
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the build information for the running binary.
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders a single-line human-readable description.
func (i Info) String() string {
	return fmt.Sprintf("autodoc %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
}

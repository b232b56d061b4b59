// Package version holds build metadata for the nextcrud binary.
package version

import (
	"fmt"
	"runtime"
)

// Version, Commit and BuildTime are overridden at release time with -ldflags -X
var (
	Version   = "v0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// GetVersionString returns the one-line version string
func GetVersionString() string {
	return fmt.Sprintf("nextcrud version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns the version string followed by the Go runtime
func GetFullVersionInfo() string {
	return fmt.Sprintf("%s\ngo version %s (%s/%s)",
		GetVersionString(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

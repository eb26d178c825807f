// Package version provides build-time version information for mdpub.
package version

import "fmt"

// These variables are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version line printed by "mdpub --version".
func String() string {
	return fmt.Sprintf("mdpub version %s (commit: %s, built: %s)", Version, Commit, Date)
}

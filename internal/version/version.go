package version

import "strings"

// Version information, set via ldflags during build.
var (
	// Version is the current version of the application.
	Version = "0.1.0"

	// Commit is the git commit hash.
	Commit = "unknown"

	// Build is the build timestamp.
	Build = "unknown"
)

// String returns the version with a single "v" prefix, followed by the
// commit in parentheses when it is known.
func String() string {
	v := "v" + strings.TrimPrefix(Version, "v")
	if Commit == "" || Commit == "unknown" {
		return v
	}
	return v + " (" + Commit + ")"
}

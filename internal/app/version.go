package app

import "fmt"

// Build metadata, set with -ldflags "-X .../internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for the startup record.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}

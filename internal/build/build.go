// Package build holds information stamped into the binary at link time.
package build

import "fmt"

// These values are overwritten with -ldflags "-X go.trai.ch/scriptmerge/internal/build.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a one-line description of the build.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

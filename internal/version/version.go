// Package version holds build metadata injected via ldflags.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns "version (commit, date)", dropping unknown parts.
func String() string {
	s := Version
	switch {
	case Commit != "unknown" && Date != "unknown":
		s += " (" + Commit + ", " + Date + ")"
	case Commit != "unknown":
		s += " (" + Commit + ")"
	}
	return s
}

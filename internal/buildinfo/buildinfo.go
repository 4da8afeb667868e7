// Package buildinfo carries version metadata injected with
// -ldflags "-X iberos/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the boot log and window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 12 {
			return Commit[:12]
		}
		return Commit
	}
	return "dev"
}

// Long returns the identifier with commit and build date.
func Long() string {
	return Short() + " (" + Commit + ", " + Date + ")"
}

package buildinfo

import "fmt"

// Set at build time with -ldflags "-X github.com/aalvaropc/rolodex/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("rolodex %s (commit=%s, date=%s)", Version, Commit, Date)
}

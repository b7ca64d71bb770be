// Package buildinfo carries version stamps injected with
// -ldflags "-X garden/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short prefers a release version, then a commit, then "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Banner is the one-line build description logged at boot.
func Banner() string {
	return fmt.Sprintf("garden %s (commit %s, built %s)", Version, Commit, Date)
}

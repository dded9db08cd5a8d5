package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/fontweak/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/fontweak/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/fontweak/internal/version.Date={{.Date}}
)

// Short returns the version followed by the abbreviated commit
func Short() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}

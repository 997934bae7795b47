// Package buildinfo provides build-time version information for platemap.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/nitro-bio/platemap/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/nitro-bio/platemap/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/nitro-bio/platemap/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/platemap
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information on one line, e.g.
// "v1.2.3 (commit 1a2b3c, built 2025-01-02T15:04:05Z)".
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

// Template returns the version template for cobra's --version flag.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}

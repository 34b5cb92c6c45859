// Package buildinfo holds version information injected at build time:
//
//	go build -ldflags "\
//	    -X github.com/matzehuels/maximizer/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/maximizer/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/maximizer/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/maximizer
//
// Version also scopes the CLI result cache, so a new release never serves
// antichains computed by an older one.
package buildinfo

import "fmt"

// Set via ldflags; the defaults mark a local build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}

// Package version holds build metadata injected with -ldflags, e.g.
//
//	-X github.com/supporthub/supporthub/internal/shared/version.Current=v1.2.0
package version

import "fmt"

var (
	Current   = "dev"
	Commit    = "unknown"
	BuildTime = ""
)

// String returns a one-line description of the build.
func String() string {
	if BuildTime == "" {
		return fmt.Sprintf("%s (%s)", Current, Commit)
	}
	return fmt.Sprintf("%s (%s, built %s)", Current, Commit, BuildTime)
}

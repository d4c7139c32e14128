// Package version reports how the binary was built. The variables are set at
// link time, for example:
//
//	go build -ldflags "\
//	  -X github.com/jmylchreest/contrastpick/internal/version.Version=v0.3.0 \
//	  -X github.com/jmylchreest/contrastpick/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/contrastpick/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

const commitLength = 8

// Short returns the bare version, as printed by --version.
func Short() string {
	return Version
}

// String describes the build on one line, e.g.
// "contrastpick version v0.3.0 (commit 0123abcd, built 2026-01-02T03:04:05Z, go1.25.1 linux/amd64)".
// Commit and date are left out when they were not set.
func String() string {
	details := make([]string, 0, 3)
	if Commit != "" {
		details = append(details, "commit "+abbreviate(Commit))
	}
	if Date != "" {
		details = append(details, "built "+Date)
	}
	details = append(details, fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH))

	return fmt.Sprintf("contrastpick version %s (%s)", Version, strings.Join(details, ", "))
}

func abbreviate(commit string) string {
	if len(commit) > commitLength {
		return commit[:commitLength]
	}
	return commit
}

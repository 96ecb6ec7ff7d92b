// Package version provides build version information.
package version

import (
	"runtime"
	"strings"

	"github.com/coral-mesh/schedlayout/internal/buildcfg"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "dev"

	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"

	// BuildDate is the build timestamp (set by build flags)
	BuildDate = "unknown"

	// GoVersion is the Go version used to build
	GoVersion = runtime.Version()
)

// BuildConfig describes the feature selection compiled into this binary,
// e.g. "cfs/amd64 tags=detect_hung_task,numa_balancing".
func BuildConfig() string {
	tags := strings.Join(buildcfg.Tags(), ",")
	if tags == "" {
		tags = "none"
	}
	return buildcfg.Scheduler() + "/" + buildcfg.Arch() + " tags=" + tags
}

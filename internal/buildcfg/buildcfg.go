// Package buildcfg exposes the build-time feature selection as constants.
//
// Every feature is a Go build tag. The toolchain resolves the tags once per build,
// and each feature has a pair of files (`<feature>_on.go` / `<feature>_off.go`)
// that define the matching constant. Code that branches on these constants is
// eliminated by the compiler, so a disabled feature costs nothing at runtime.
package buildcfg

import (
	"runtime"
	"sort"
)

// Feature names a build tag that selects an optional scheduler subsystem.
type Feature string

const (
	// FeatureDetectHungTask enables the hung task detector tunables.
	FeatureDetectHungTask Feature = "detect_hung_task"

	// FeatureNUMABalancing enables automatic NUMA balancing.
	FeatureNUMABalancing Feature = "numa_balancing"

	// FeatureMuQSS selects the MuQSS scheduler, which replaces the primary run queue.
	FeatureMuQSS Feature = "sched_muqss"

	// FeatureCacULE selects the CacULE patches on top of the primary scheduler.
	FeatureCacULE Feature = "sched_cacule"
)

// Scheduler implementation names returned by Scheduler.
const (
	SchedulerCFS    = "cfs"
	SchedulerCacULE = "cacule"
	SchedulerMuQSS  = "muqss"
)

// Features returns every known feature in tag order.
func Features() []Feature {
	return []Feature{
		FeatureDetectHungTask,
		FeatureNUMABalancing,
		FeatureCacULE,
		FeatureMuQSS,
	}
}

// Known reports whether f is a feature this build understands.
func Known(f Feature) bool {
	for _, k := range Features() {
		if k == f {
			return true
		}
	}
	return false
}

// Enabled reports whether f was selected when this binary was compiled.
func Enabled(f Feature) bool {
	switch f {
	case FeatureDetectHungTask:
		return DetectHungTask
	case FeatureNUMABalancing:
		return NUMABalancing
	case FeatureMuQSS:
		return MuQSS
	case FeatureCacULE:
		return CacULE
	default:
		return false
	}
}

// Tags returns the sorted build tags active in this binary.
func Tags() []string {
	var tags []string
	for _, f := range Features() {
		if Enabled(f) {
			tags = append(tags, string(f))
		}
	}
	sort.Strings(tags)
	return tags
}

// Scheduler returns the scheduler implementation selected at build time.
func Scheduler() string {
	switch {
	case MuQSS:
		return SchedulerMuQSS
	case CacULE:
		return SchedulerCacULE
	default:
		return SchedulerCFS
	}
}

// Arch returns the target architecture the layout was compiled for.
func Arch() string {
	return runtime.GOARCH
}

//go:build sched_muqss && sched_cacule

package buildcfg

// MuQSS replaces the run queue that CacULE patches, so the two cannot be built
// together. The assignment below never type-checks and stops the build.
var _ int = "sched_muqss and sched_cacule select conflicting scheduler implementations"

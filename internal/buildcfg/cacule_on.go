//go:build sched_cacule

package buildcfg

// CacULE reports whether the CacULE scheduler patches are applied.
const CacULE = true

//go:build !sched_muqss

package buildcfg

// MuQSS reports whether the MuQSS run queue replaces the primary one.
const MuQSS = false

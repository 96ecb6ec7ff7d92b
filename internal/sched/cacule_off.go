//go:build !sched_cacule

package sched

// CaculeList is empty without the CacULE patches.
type CaculeList struct{}

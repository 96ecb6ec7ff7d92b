//go:build sched_cacule

package sched

// CaculeList is the CacULE interactivity list threaded through the fair queue.
type CaculeList struct {
	Head uintptr
	Tail uintptr
}

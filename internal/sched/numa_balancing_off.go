//go:build !numa_balancing

package sched

// NUMACounters is empty without NUMA balancing.
type NUMACounters struct{}

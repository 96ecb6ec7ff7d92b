//go:build numa_balancing

package sched

// NUMACounters tracks tasks placed by NUMA balancing.
type NUMACounters struct {
	NrNumaRunning      uint32
	NrPreferredRunning uint32
}

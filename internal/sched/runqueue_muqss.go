//go:build sched_muqss

package sched

import "structs"

// RunQueue is the MuQSS per-CPU run queue. It shares a name with the primary
// run queue but not its layout, and has no pinned-task counter.
type RunQueue struct {
	_ structs.HostLayout

	Lock      uint32
	NrRunning uint32

	NUMA NUMACounters

	Curr uintptr
	Idle uintptr
	Stop uintptr

	Clock     uint64
	ClockTask uint64

	BestKey     uint64
	RQDeadline  uint64
	RQPrio      int32
	SiblingIdle int32

	NrSwitches        uint64
	NrUninterruptible uint64
	CPU               int32
	Online            int32
}

//go:build !sched_muqss

package sched

import "structs"

// RunQueue is the per-CPU run queue of the primary scheduler.
type RunQueue struct {
	_ structs.HostLayout

	Lock      uint32
	NrRunning uint32

	NUMA NUMACounters

	NrSwitches        uint64
	NrUninterruptible uint64
	Clock             uint64
	ClockTask         uint64
	ClockPELT         uint64

	Curr uintptr
	Idle uintptr
	Stop uintptr

	NextBalance uint64
	CPU         int32
	Online      int32

	CFS CFSQueue
	RT  RTQueue

	// NrPinned counts tasks that are migration-disabled on this CPU.
	NrPinned uint32
	PushBusy uint32

	CPUCapacity   uint64
	AvgIdle       uint64
	MaxIdleCost   uint64
	IdleStamp     uint64
	ScanTimestamp uint64
}

// CFSQueue is the fair-class sub-queue embedded in RunQueue.
type CFSQueue struct {
	// Cacule must stay first: a trailing zero-size field would add padding.
	Cacule CaculeList

	Load        uint64
	NrRunning   uint32
	HNrRunning  uint32
	MinVruntime uint64
}

// RTQueue is the real-time sub-queue embedded in RunQueue.
type RTQueue struct {
	NrRunning   uint32
	RRNrRunning uint32
	HighestPrio int32
	Overloaded  int32
}

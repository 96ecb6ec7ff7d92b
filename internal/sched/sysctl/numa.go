package sysctl

// NUMA balancing mode bits.
const (
	NUMABalancingDisabled      = 0x0
	NUMABalancingNormal        = 0x1
	NUMABalancingMemoryTiering = 0x2
)

// NUMABalancingEnabled reports whether any NUMA balancing mode is active.
func NUMABalancingEnabled() bool {
	return NUMABalancingMode != NUMABalancingDisabled
}

// MemoryTieringEnabled reports whether NUMA balancing promotes hot pages
// between memory tiers.
func MemoryTieringEnabled() bool {
	return NUMABalancingMode&NUMABalancingMemoryTiering != 0
}

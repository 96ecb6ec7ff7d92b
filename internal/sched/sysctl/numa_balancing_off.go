//go:build !numa_balancing

package sysctl

// NUMABalancingMode is always disabled without NUMA balancing.
const NUMABalancingMode = NUMABalancingDisabled

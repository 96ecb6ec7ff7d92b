//go:build numa_balancing

package buildcfg

// NUMABalancing reports whether automatic NUMA balancing is compiled in.
const NUMABalancing = true

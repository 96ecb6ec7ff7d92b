// Package sysfs provides utilities for interacting with the /sys filesystem.
package sysfs

import (
	"os"
)

// KernelBTFPath is where the running kernel exposes its own BTF.
const KernelBTFPath = "/sys/kernel/btf/vmlinux"

// CheckBTFAvailable checks if BTF (BPF Type Format) is available.
// Kernel structure layouts can only be read from a kernel built with BTF.
func CheckBTFAvailable() bool {
	_, err := os.Stat(KernelBTFPath)
	return err == nil
}

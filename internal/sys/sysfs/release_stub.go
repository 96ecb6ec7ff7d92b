//go:build !linux

package sysfs

import "fmt"

// KernelRelease is only available on Linux.
func KernelRelease() (string, error) {
	return "", fmt.Errorf("kernel release is only available on Linux")
}

//go:build linux

package sysfs

import (
	"golang.org/x/sys/unix"
)

// KernelRelease returns the running kernel release, e.g. "6.8.0-45-generic".
func KernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}

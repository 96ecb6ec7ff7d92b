package sysctl

import "time"

// HungTaskTimeout returns the hung task timeout as a duration.
func HungTaskTimeout() time.Duration {
	return time.Duration(HungTaskTimeoutSecs) * time.Second
}

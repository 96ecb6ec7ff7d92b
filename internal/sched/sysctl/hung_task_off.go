//go:build !detect_hung_task

package sysctl

// HungTaskTimeoutSecs is always zero without the hung task detector.
const HungTaskTimeoutSecs = 0

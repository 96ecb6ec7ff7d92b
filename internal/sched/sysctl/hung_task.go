//go:build detect_hung_task

package sysctl

import "github.com/coral-mesh/schedlayout/internal/buildcfg"

// HungTaskTimeoutSecs is how long a task may stay uninterruptible before it is
// reported. Zero disables the check.
var HungTaskTimeoutSecs uint64 = 120

func init() {
	declare("hung_task_timeout_secs", KindUnsigned, buildcfg.FeatureDetectHungTask, &HungTaskTimeoutSecs)
}

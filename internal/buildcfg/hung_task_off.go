//go:build !detect_hung_task

package buildcfg

// DetectHungTask reports whether the hung task detector is compiled in.
const DetectHungTask = false

// Package sched holds the scheduler structures whose layout is published to
// external tooling.
//
// Only the shape of these types matters here. Which fields exist depends on the
// build tags in package buildcfg: the primary run queue is compiled unless
// sched_muqss is set, in which case an incompatible MuQSS run queue takes its
// place. Optional subsystems contribute blocks that collapse to zero size when
// their feature is off, so the offsets of the fields after them move with the
// configuration.
package sched

// Package rqoffsets defines the run-queue offsets published to external tools.
//
// The header is regenerated before every build with the same tags as the build
// itself, since offsets from one configuration are meaningless in another:
//
//	GOFLAGS=-tags=numa_balancing go generate ./internal/sched/rqoffsets
//
// Under sched_muqss the primary run queue does not exist and the generated
// header carries no offsets.
package rqoffsets

//go:generate go run ../../../cmd/schedlayout generate --format c --output ../../../include/generated/rq-offsets.h

package sysctl

import "strconv"

// TunableScaling selects how scheduler latency tunables scale with CPU count.
type TunableScaling int32

const (
	TunableScalingNone TunableScaling = iota
	TunableScalingLog
	TunableScalingLinear
	// TunableScalingEnd bounds the valid range; it is not a policy.
	TunableScalingEnd
)

func (s TunableScaling) String() string {
	switch s {
	case TunableScalingNone:
		return "none"
	case TunableScalingLog:
		return "log"
	case TunableScalingLinear:
		return "linear"
	default:
		return "scaling(" + strconv.Itoa(int(s)) + ")"
	}
}

// Valid reports whether s is a selectable policy.
func (s TunableScaling) Valid() bool {
	return s >= TunableScalingNone && s < TunableScalingEnd
}

// TunableScalingPolicy is the active scaling policy.
var TunableScalingPolicy = TunableScalingLog

func init() {
	declare("sched_tunable_scaling", KindEnum, "", &TunableScalingPolicy)
}

//go:build numa_balancing

package sysctl

import "github.com/coral-mesh/schedlayout/internal/buildcfg"

// NUMABalancingMode is a mask of the NUMABalancing* bits.
var NUMABalancingMode int32 = NUMABalancingDisabled

func init() {
	declare("numa_balancing_mode", KindSigned, buildcfg.FeatureNUMABalancing, &NUMABalancingMode)
}

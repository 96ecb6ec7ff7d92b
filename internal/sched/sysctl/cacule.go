//go:build sched_cacule

package sysctl

import "github.com/coral-mesh/schedlayout/internal/buildcfg"

// CacULE tunables. They have no fallback: code that reads them is itself
// built only with sched_cacule.
var (
	InteractivityFactor uint32 = 32768
	CaculeMaxLifetime   uint32 = 22000 // ms
	CacheFactor         uint32 = 13107
	CacheDivisor        uint32 = 1000000 // 1ms
	StarveFactor        uint32 = 19660
	StarveDivisor       uint32 = 3000000 // 3ms
	CaculeYield         int32  = 1
)

func init() {
	declare("interactivity_factor", KindUnsigned, buildcfg.FeatureCacULE, &InteractivityFactor)
	declare("cacule_max_lifetime", KindUnsigned, buildcfg.FeatureCacULE, &CaculeMaxLifetime)
	declare("cache_factor", KindUnsigned, buildcfg.FeatureCacULE, &CacheFactor)
	declare("cache_divisor", KindUnsigned, buildcfg.FeatureCacULE, &CacheDivisor)
	declare("starve_factor", KindUnsigned, buildcfg.FeatureCacULE, &StarveFactor)
	declare("starve_divisor", KindUnsigned, buildcfg.FeatureCacULE, &StarveDivisor)
	declare("cacule_yield", KindSigned, buildcfg.FeatureCacULE, &CaculeYield)
}

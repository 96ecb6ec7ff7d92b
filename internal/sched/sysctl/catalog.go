package sysctl

import "github.com/coral-mesh/schedlayout/internal/buildcfg"

// Descriptor describes a tunable independently of whether it is compiled in.
type Descriptor struct {
	Name     string
	Symbol   string
	Kind     Kind
	Feature  buildcfg.Feature
	Default  string
	Fallback string
}

// Available reports whether the tunable exists in this build.
func (d Descriptor) Available() bool {
	return d.Feature == "" || buildcfg.Enabled(d.Feature)
}

var catalog = []Descriptor{
	{Name: "hung_task_timeout_secs", Symbol: "HungTaskTimeoutSecs", Kind: KindUnsigned, Feature: buildcfg.FeatureDetectHungTask, Default: "120", Fallback: "0"},
	{Name: "interactivity_factor", Symbol: "InteractivityFactor", Kind: KindUnsigned, Feature: buildcfg.FeatureCacULE, Default: "32768"},
	{Name: "cacule_max_lifetime", Symbol: "CaculeMaxLifetime", Kind: KindUnsigned, Feature: buildcfg.FeatureCacULE, Default: "22000"},
	{Name: "cache_factor", Symbol: "CacheFactor", Kind: KindUnsigned, Feature: buildcfg.FeatureCacULE, Default: "13107"},
	{Name: "cache_divisor", Symbol: "CacheDivisor", Kind: KindUnsigned, Feature: buildcfg.FeatureCacULE, Default: "1000000"},
	{Name: "starve_factor", Symbol: "StarveFactor", Kind: KindUnsigned, Feature: buildcfg.FeatureCacULE, Default: "19660"},
	{Name: "starve_divisor", Symbol: "StarveDivisor", Kind: KindUnsigned, Feature: buildcfg.FeatureCacULE, Default: "3000000"},
	{Name: "cacule_yield", Symbol: "CaculeYield", Kind: KindSigned, Feature: buildcfg.FeatureCacULE, Default: "1"},
	{Name: "numa_balancing_mode", Symbol: "NUMABalancingMode", Kind: KindSigned, Feature: buildcfg.FeatureNUMABalancing, Default: "0", Fallback: "0"},
	{Name: "sched_tunable_scaling", Symbol: "TunableScalingPolicy", Kind: KindEnum, Default: "log"},
}

// Catalog returns every known tunable, compiled in or not.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// Package config loads build profiles: the feature selection a build uses and
// where its layout artifact goes.
package config

import (
	"sort"

	"github.com/coral-mesh/schedlayout/internal/buildcfg"
	"github.com/coral-mesh/schedlayout/internal/constants"
)

// SchemaVersion is the current profile schema version.
const SchemaVersion = "1"

// Profile is a build profile.
type Profile struct {
	Version  string        `yaml:"version"`
	Features Features      `yaml:"features"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
}

// Features is the feature selection of a build. Each field is one build tag.
type Features struct {
	DetectHungTask bool `yaml:"detect_hung_task" env:"SCHEDLAYOUT_DETECT_HUNG_TASK"`
	NUMABalancing  bool `yaml:"numa_balancing" env:"SCHEDLAYOUT_NUMA_BALANCING"`
	MuQSS          bool `yaml:"sched_muqss" env:"SCHEDLAYOUT_SCHED_MUQSS"`
	CacULE         bool `yaml:"sched_cacule" env:"SCHEDLAYOUT_SCHED_CACULE"`
}

// OutputConfig controls where and how the artifact is written.
type OutputConfig struct {
	Path    string `yaml:"path" env:"SCHEDLAYOUT_OUTPUT"`
	Format  string `yaml:"format" env:"SCHEDLAYOUT_FORMAT"`
	Package string `yaml:"package,omitempty" env:"SCHEDLAYOUT_PACKAGE"`
}

// LoggingConfig controls generator logging.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"SCHEDLAYOUT_LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"SCHEDLAYOUT_LOG_PRETTY"`
}

// DefaultProfile returns a profile with no optional features.
func DefaultProfile() *Profile {
	return &Profile{
		Version: SchemaVersion,
		Output: OutputConfig{
			Path:   constants.DefaultArtifactPath,
			Format: constants.DefaultArtifactFormat,
		},
		Logging: LoggingConfig{
			Level: constants.DefaultLogLevel,
		},
	}
}

// Enabled reports whether f is selected.
func (f Features) Enabled(feature buildcfg.Feature) bool {
	switch feature {
	case buildcfg.FeatureDetectHungTask:
		return f.DetectHungTask
	case buildcfg.FeatureNUMABalancing:
		return f.NUMABalancing
	case buildcfg.FeatureMuQSS:
		return f.MuQSS
	case buildcfg.FeatureCacULE:
		return f.CacULE
	default:
		return false
	}
}

// Tags returns the build tags for the selection, in the same order as
// buildcfg.Tags.
func (f Features) Tags() []string {
	var tags []string
	for _, feature := range buildcfg.Features() {
		if f.Enabled(feature) {
			tags = append(tags, string(feature))
		}
	}
	sort.Strings(tags)
	return tags
}

// CompiledFeatures returns the selection this binary was built with.
func CompiledFeatures() Features {
	return Features{
		DetectHungTask: buildcfg.DetectHungTask,
		NUMABalancing:  buildcfg.NUMABalancing,
		MuQSS:          buildcfg.MuQSS,
		CacULE:         buildcfg.CacULE,
	}
}

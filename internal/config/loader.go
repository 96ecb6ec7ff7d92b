package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coral-mesh/schedlayout/internal/buildcfg"
)

// kconfigSymbols maps kernel configuration symbols to features.
var kconfigSymbols = map[string]buildcfg.Feature{
	"CONFIG_DETECT_HUNG_TASK": buildcfg.FeatureDetectHungTask,
	"CONFIG_NUMA_BALANCING":   buildcfg.FeatureNUMABalancing,
	"CONFIG_SCHED_MUQSS":      buildcfg.FeatureMuQSS,
	"CONFIG_CACULE_SCHED":     buildcfg.FeatureCacULE,
}

// LoadProfile loads a YAML build profile.
// An empty path returns the default profile. Environment overrides are applied
// on top of the file, and the result is validated.
func LoadProfile(path string) (*Profile, error) {
	return loadProfile(path, DefaultProfile())
}

// LoadBuildProfile loads the profile a generator run works from and checks it
// against the tags this binary was compiled with. An empty path starts from the
// compiled feature set, so only environment overrides can cause a mismatch.
func LoadBuildProfile(path string) (*Profile, error) {
	base := DefaultProfile()
	if path == "" {
		base.Features = CompiledFeatures()
	}

	profile, err := loadProfile(path, base)
	if err != nil {
		return nil, err
	}
	if err := CheckCompiled(profile.Features); err != nil {
		return nil, err
	}
	return profile, nil
}

func loadProfile(path string, profile *Profile) (*Profile, error) {
	if path != "" {
		//nolint:gosec // G304: Path is supplied by the build invoking the generator.
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile: %w", err)
		}
		if err := yaml.Unmarshal(data, profile); err != nil {
			return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
		}
	}

	if err := LoadFromEnv(profile); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// SaveProfile writes profile as YAML.
func SaveProfile(path string, profile *Profile) error {
	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	//nolint:gosec // G306: Profiles are not sensitive.
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// LoadKconfig reads the feature selection from a kernel-style .config file.
// "CONFIG_X=y" enables a feature; "=m" is rejected because none of the
// features can be modular; "# CONFIG_X is not set" and unknown symbols are
// ignored.
func LoadKconfig(path string) (Features, error) {
	//nolint:gosec // G304: Path is supplied by the build invoking the generator.
	f, err := os.Open(path)
	if err != nil {
		return Features{}, fmt.Errorf("failed to open kconfig: %w", err)
	}
	defer func() { _ = f.Close() }()

	var features Features
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		sym, val, ok := strings.Cut(text, "=")
		if !ok {
			return Features{}, fmt.Errorf("%s:%d: malformed line %q", path, line, text)
		}
		feature, known := kconfigSymbols[sym]
		if !known {
			continue
		}

		switch val {
		case "y":
			features.set(feature)
		case "n":
		default:
			return Features{}, fmt.Errorf("%s:%d: %s=%s is not supported, expected y or n", path, line, sym, val)
		}
	}
	if err := sc.Err(); err != nil {
		return Features{}, fmt.Errorf("failed to read kconfig: %w", err)
	}

	if err := features.Validate(); err != nil {
		return Features{}, err
	}
	return features, nil
}

func (f *Features) set(feature buildcfg.Feature) {
	switch feature {
	case buildcfg.FeatureDetectHungTask:
		f.DetectHungTask = true
	case buildcfg.FeatureNUMABalancing:
		f.NUMABalancing = true
	case buildcfg.FeatureMuQSS:
		f.MuQSS = true
	case buildcfg.FeatureCacULE:
		f.CacULE = true
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coral-mesh/schedlayout/internal/offsets"
)

var (
	// ErrConflictingScheduler is returned when more than one alternate
	// scheduler implementation is selected.
	ErrConflictingScheduler = errors.New("conflicting scheduler selection")

	// ErrConfigurationMismatch is returned when a profile asks for a feature set
	// the running binary was not compiled with.
	ErrConfigurationMismatch = errors.New("configuration mismatch")
)

// Validate checks the feature selection for unsupported combinations.
func (f Features) Validate() error {
	if f.MuQSS && f.CacULE {
		return fmt.Errorf("%w: sched_muqss and sched_cacule cannot be combined", ErrConflictingScheduler)
	}
	return nil
}

// Validate checks the whole profile.
func (p *Profile) Validate() error {
	if p.Version != SchemaVersion {
		return fmt.Errorf("unsupported profile version %q, expected %q", p.Version, SchemaVersion)
	}
	if err := p.Features.Validate(); err != nil {
		return err
	}
	if _, err := offsets.ParseFormat(p.Output.Format); err != nil {
		return err
	}
	if p.Output.Path == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	return nil
}

// CheckCompiled fails unless want is exactly the feature set this binary was
// compiled with. Offsets measured by this binary are only valid for that set,
// so generating for any other profile would publish wrong values.
func CheckCompiled(want Features) error {
	got := CompiledFeatures()
	if want == got {
		return nil
	}
	return fmt.Errorf("%w: profile selects tags [%s] but the generator was built with [%s]; rebuild it with -tags=%s",
		ErrConfigurationMismatch,
		strings.Join(want.Tags(), " "),
		strings.Join(got.Tags(), " "),
		strings.Join(want.Tags(), ","))
}

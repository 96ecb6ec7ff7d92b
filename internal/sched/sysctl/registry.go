// Package sysctl declares the scheduler tunables.
//
// A tunable exists only when its feature is compiled in. Each one is a plain
// package-level variable declared in a file whose build constraint is the
// tunable's availability predicate, and registered by name during package
// initialisation. When the feature is off, a constant of the same name stands in
// wherever the tunable has a meaningful fallback, so callers never need build
// constraints of their own.
package sysctl

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/coral-mesh/schedlayout/internal/buildcfg"
	coralerrors "github.com/coral-mesh/schedlayout/internal/errors"
)

// ErrDuplicateTunable is returned when two tunables share a name.
var ErrDuplicateTunable = errors.New("duplicate tunable")

// Kind is the value type of a tunable.
type Kind int

const (
	KindUnsigned Kind = iota
	KindSigned
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindUnsigned:
		return "unsigned"
	case KindSigned:
		return "signed"
	case KindEnum:
		return "enum"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Tunable is a registered, compiled-in tunable.
type Tunable struct {
	Name    string
	Kind    Kind
	Feature buildcfg.Feature

	// value points at the package variable backing the tunable.
	value any
}

// Value returns the current value of the tunable.
func (t Tunable) Value() any {
	switch v := t.value.(type) {
	case *uint64:
		return *v
	case *uint32:
		return *v
	case *int32:
		return *v
	case *TunableScaling:
		return *v
	default:
		return nil
	}
}

// String formats the current value.
func (t Tunable) String() string {
	if v, ok := t.value.(*TunableScaling); ok {
		return v.String()
	}
	return fmt.Sprint(t.Value())
}

// Registry holds tunables by name.
type Registry struct {
	byName map[string]Tunable
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Tunable)}
}

// Declare adds t to the registry.
func (r *Registry) Declare(t Tunable) error {
	if t.Name == "" {
		return fmt.Errorf("tunable without a name")
	}
	if _, ok := r.byName[t.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTunable, t.Name)
	}
	if t.value == nil {
		return fmt.Errorf("tunable %s has no storage", t.Name)
	}
	r.byName[t.Name] = t
	return nil
}

// Lookup returns the tunable called name, if it is compiled in.
func (r *Registry) Lookup(name string) (Tunable, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// All returns every registered tunable, sorted by name.
func (r *Registry) All() []Tunable {
	out := make([]Tunable, 0, len(r.byName))
	for _, t := range r.byName {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

var registry = NewRegistry()

// declare registers a tunable of this package. A collision is a programming
// error in the declarations and aborts initialisation.
func declare(name string, kind Kind, feature buildcfg.Feature, value any) {
	coralerrors.Must(registry.Declare(Tunable{
		Name:    name,
		Kind:    kind,
		Feature: feature,
		value:   value,
	}), "declare tunable")
}

// Lookup returns the compiled-in tunable called name.
func Lookup(name string) (Tunable, bool) {
	return registry.Lookup(name)
}

// All returns every compiled-in tunable, sorted by name.
func All() []Tunable {
	return registry.All()
}

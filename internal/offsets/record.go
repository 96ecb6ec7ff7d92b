package offsets

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/coral-mesh/schedlayout/internal/buildcfg"
)

var (
	// ErrFieldNotFound is returned when a probed field does not exist.
	ErrFieldNotFound = errors.New("field not found")

	// ErrDuplicateSymbol is returned when two entries map to the same symbol.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrOffsetMismatch is returned when the compiled offset disagrees with the probe.
	ErrOffsetMismatch = errors.New("offset mismatch")
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Symbol returns the constant name for member of structName, e.g. RQ_nr_pinned.
func Symbol(structName, member string) string {
	return strings.ToUpper(structName) + "_" + member
}

// Record is one emitted offset constant.
type Record struct {
	Symbol string `json:"symbol" header:"SYMBOL"`
	Value  uint64 `json:"value" header:"VALUE"`
	Struct string `json:"struct" header:"STRUCT"`
	Member string `json:"member" header:"MEMBER"`
}

type entryKind int

const (
	entryOffset entryKind = iota
	entryBlank
	entryComment
)

// Entry is one line of an artifact definition.
type Entry struct {
	kind entryKind

	Struct  string
	Member  string
	GoType  reflect.Type
	GoField string
	Value   uint64
	Text    string
}

// Offset describes the offset of member within structName.
// value must be unsafe.Offsetof of goField in goType. When goType is nil the
// value is taken as is, which is how layouts from outside the Go compiler
// (BTF for instance) are recorded.
func Offset(structName, member string, goType reflect.Type, goField string, value uintptr) Entry {
	return Entry{
		kind:    entryOffset,
		Struct:  structName,
		Member:  member,
		GoType:  goType,
		GoField: goField,
		Value:   uint64(value),
	}
}

// Blank emits an empty line.
func Blank() Entry {
	return Entry{kind: entryBlank}
}

// Comment emits a comment line.
func Comment(text string) Entry {
	return Entry{kind: entryComment, Text: text}
}

// Config identifies the build configuration an artifact belongs to.
type Config struct {
	Arch      string
	Scheduler string
	Tags      []string
}

// CurrentConfig returns the configuration this binary was compiled with.
func CurrentConfig() Config {
	return Config{
		Arch:      buildcfg.Arch(),
		Scheduler: buildcfg.Scheduler(),
		Tags:      buildcfg.Tags(),
	}
}

// Artifact is a validated set of records ready to be rendered.
type Artifact struct {
	Name    string
	Config  Config
	Records []Record

	items []item
}

type item struct {
	record  int
	blank   bool
	comment string
}

// Fingerprint returns the fingerprint of the artifact contents.
func (a *Artifact) Fingerprint() uint64 {
	return Fingerprint(a.Config, a.Records)
}

// Empty reports whether the artifact carries no records.
func (a *Artifact) Empty() bool {
	return len(a.Records) == 0
}

// Build validates entries and assembles an artifact.
func Build(name string, cfg Config, entries []Entry) (*Artifact, error) {
	if name == "" {
		return nil, fmt.Errorf("artifact name is required")
	}
	if len(cfg.Tags) == 0 {
		cfg.Tags = nil
	}

	a := &Artifact{Name: name, Config: cfg}
	seen := make(map[string]bool)

	for i, e := range entries {
		switch e.kind {
		case entryBlank:
			a.items = append(a.items, item{record: -1, blank: true})
			continue
		case entryComment:
			if strings.Contains(e.Text, "*/") || strings.ContainsAny(e.Text, "\r\n") {
				return nil, fmt.Errorf("entry %d: comment %q must be a single line without \"*/\"", i, e.Text)
			}
			a.items = append(a.items, item{record: -1, comment: e.Text})
			continue
		}

		if e.Struct == "" || e.Member == "" {
			return nil, fmt.Errorf("entry %d: struct and member are required", i)
		}
		sym := Symbol(e.Struct, e.Member)
		if !identRe.MatchString(sym) {
			return nil, fmt.Errorf("entry %d: %q is not a valid identifier", i, sym)
		}
		if seen[sym] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, sym)
		}
		seen[sym] = true

		if e.GoType != nil {
			probed, err := Probe(e.GoType, e.GoField)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", sym, err)
			}
			if uint64(probed) != e.Value {
				return nil, fmt.Errorf("%w: %s compiled as %d, probe found %d",
					ErrOffsetMismatch, sym, e.Value, probed)
			}
		}

		a.items = append(a.items, item{record: len(a.Records)})
		a.Records = append(a.Records, Record{
			Symbol: sym,
			Value:  e.Value,
			Struct: e.Struct,
			Member: e.Member,
		})
	}

	return a, nil
}

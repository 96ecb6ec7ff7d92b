// Package btfprobe reads structure member offsets from BTF type information.
//
// The Go compiler can only measure Go types. When the structure of interest is
// the running kernel's own (struct rq, for instance), its layout comes from the
// kernel's BTF instead. Offsets found here feed the same artifact pipeline as
// compiled offsets and are subject to the same rule: a missing member fails the
// whole run.
package btfprobe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cilium/ebpf/btf"
	"github.com/rs/zerolog"

	"github.com/coral-mesh/schedlayout/internal/offsets"
	"github.com/coral-mesh/schedlayout/internal/sys/sysfs"
)

// KernelSource selects the running kernel's BTF in Load.
const KernelSource = "kernel"

var (
	// ErrMemberNotFound is returned when a structure lacks the requested member.
	ErrMemberNotFound = errors.New("member not found")

	// ErrBitfield is returned for bitfield members, which have no byte offset.
	ErrBitfield = errors.New("bitfield member")
)

// TypeFinder looks up named types. *btf.Spec implements it.
type TypeFinder interface {
	TypeByName(name string, typ interface{}) error
}

// Pair names a member of a structure.
type Pair struct {
	Struct string
	Member string
}

func (p Pair) String() string {
	return p.Struct + "." + p.Member
}

// ParsePair parses "struct.member".
func ParsePair(s string) (Pair, error) {
	st, m, ok := strings.Cut(s, ".")
	if !ok || st == "" || m == "" {
		return Pair{}, fmt.Errorf("invalid member %q, expected struct.member", s)
	}
	return Pair{Struct: st, Member: m}, nil
}

// Load reads BTF from path, or from the running kernel when path is empty or
// KernelSource.
func Load(logger zerolog.Logger, path string) (*btf.Spec, error) {
	if path == "" || path == KernelSource {
		if !sysfs.CheckBTFAvailable() {
			return nil, fmt.Errorf("kernel BTF not available at %s", sysfs.KernelBTFPath)
		}
		if release, err := sysfs.KernelRelease(); err == nil {
			logger.Debug().Str("release", release).Msg("loading kernel BTF")
		}
		spec, err := btf.LoadKernelSpec()
		if err != nil {
			return nil, fmt.Errorf("failed to load kernel BTF: %w", err)
		}
		return spec, nil
	}

	logger.Debug().Str("path", path).Msg("loading BTF")
	spec, err := btf.LoadSpec(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load BTF from %s: %w", path, err)
	}
	return spec, nil
}

// Entries resolves every pair to an offset entry. It fails on the first pair
// that cannot be resolved.
func Entries(spec TypeFinder, pairs []Pair) ([]offsets.Entry, error) {
	entries := make([]offsets.Entry, 0, len(pairs))
	for _, p := range pairs {
		var st *btf.Struct
		if err := spec.TypeByName(p.Struct, &st); err != nil {
			return nil, fmt.Errorf("struct %s: %w", p.Struct, err)
		}

		off, err := memberOffset(st.Members, p.Member)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if off%8 != 0 {
			return nil, fmt.Errorf("%s: offset %d bits is not byte aligned", p, off)
		}

		entries = append(entries, offsets.Offset(p.Struct, p.Member, nil, "", uintptr(off.Bytes())))
	}
	return entries, nil
}

// memberOffset finds name among members, descending into anonymous structs
// and unions the way the C compiler resolves their members.
func memberOffset(members []btf.Member, name string) (btf.Bits, error) {
	for _, m := range members {
		if m.Name == name {
			if m.BitfieldSize != 0 {
				return 0, fmt.Errorf("%w: %s", ErrBitfield, name)
			}
			return m.Offset, nil
		}
	}

	for _, m := range members {
		if m.Name != "" {
			continue
		}
		var nested []btf.Member
		switch t := btf.UnderlyingType(m.Type).(type) {
		case *btf.Struct:
			nested = t.Members
		case *btf.Union:
			nested = t.Members
		default:
			continue
		}
		off, err := memberOffset(nested, name)
		if errors.Is(err, ErrMemberNotFound) {
			continue
		}
		if err != nil {
			return 0, err
		}
		return m.Offset + off, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrMemberNotFound, name)
}

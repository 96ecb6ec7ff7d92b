package offsets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	A uint32
	B uint64
}

type Embedded struct {
	E1 uint16
	E2 uint64
}

type probeTarget struct {
	X uint8
	Embedded
	In   inner
	P    *inner
	Last uint32
}

var testConfig = Config{Arch: "amd64", Scheduler: "cfs"}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "RQ_nr_pinned", Symbol("rq", "nr_pinned"))
	assert.Equal(t, "TASK_STRUCT_pid", Symbol("task_struct", "pid"))
}

func TestProbe(t *testing.T) {
	var v probeTarget
	typ := reflect.TypeFor[probeTarget]()

	tests := []struct {
		name    string
		path    string
		want    uintptr
		wantErr bool
	}{
		{name: "top level", path: "X", want: unsafe.Offsetof(v.X)},
		{name: "promoted", path: "E2", want: unsafe.Offsetof(v.Embedded) + unsafe.Offsetof(v.Embedded.E2)},
		{name: "nested", path: "In.B", want: unsafe.Offsetof(v.In) + unsafe.Offsetof(v.In.B)},
		{name: "last", path: "Last", want: unsafe.Offsetof(v.Last)},
		{name: "through pointer", path: "P.A", wantErr: true},
		{name: "missing", path: "Missing", wantErr: true},
		{name: "empty path", path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Probe(typ, tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Probe(typ, "Missing")
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestBuild(t *testing.T) {
	var v probeTarget
	typ := reflect.TypeFor[probeTarget]()

	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{
			name: "valid",
			entries: []Entry{
				Offset("probe", "x", typ, "X", unsafe.Offsetof(v.X)),
				Blank(),
				Comment("nested"),
				Offset("probe", "last", typ, "Last", unsafe.Offsetof(v.Last)),
			},
		},
		{
			name: "mismatch",
			entries: []Entry{
				Offset("probe", "last", typ, "Last", unsafe.Offsetof(v.Last)+1),
			},
			wantErr: ErrOffsetMismatch,
		},
		{
			name: "missing field",
			entries: []Entry{
				Offset("probe", "gone", typ, "Gone", 0),
			},
			wantErr: ErrFieldNotFound,
		},
		{
			name: "duplicate symbol",
			entries: []Entry{
				Offset("probe", "x", typ, "X", unsafe.Offsetof(v.X)),
				Offset("probe", "x", typ, "X", unsafe.Offsetof(v.X)),
			},
			wantErr: ErrDuplicateSymbol,
		},
		{
			name: "external layout without probe",
			entries: []Entry{
				Offset("rq", "nr_pinned", nil, "", 1144),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Build("probe-offsets", testConfig, tt.entries)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, a, "no partial artifact on error")
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, a.Records)
		})
	}
}

func TestBuild_RejectsInvalidEntries(t *testing.T) {
	_, err := Build("", testConfig, nil)
	assert.Error(t, err)

	_, err = Build("x", testConfig, []Entry{Offset("", "m", nil, "", 0)})
	assert.Error(t, err)

	_, err = Build("x", testConfig, []Entry{Offset("run-queue", "m", nil, "", 0)})
	assert.Error(t, err)
}

func TestBuild_RejectsUnsafeComments(t *testing.T) {
	for _, text := range []string{
		"fields */ #define RQ_evil 1 /*",
		"fields\n#define RQ_evil 1",
		"fields\r",
	} {
		a, err := Build("rq-offsets", testConfig, []Entry{
			Comment(text),
			Offset("rq", "nr_pinned", nil, "", 128),
		})
		require.Error(t, err, text)
		assert.Nil(t, a)
	}

	a, err := Build("rq-offsets", testConfig, []Entry{Comment("fields /* nested"), Offset("rq", "nr_pinned", nil, "", 128)})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, a, Options{Format: FormatC}))
	parsed, err := Parse(&buf, FormatC)
	require.NoError(t, err)
	assert.Empty(t, Diff(a, parsed))
}

func TestBuild_PreservesOrder(t *testing.T) {
	a, err := Build("x", testConfig, []Entry{
		Offset("b", "second", nil, "", 8),
		Offset("a", "first", nil, "", 0),
	})
	require.NoError(t, err)
	require.Len(t, a.Records, 2)
	assert.Equal(t, "B_second", a.Records[0].Symbol)
	assert.Equal(t, "A_first", a.Records[1].Symbol)
}

// Adding a field ahead of a measured one must change what is emitted.
func TestBuild_MutationSensitivity(t *testing.T) {
	type before struct {
		A      uint32
		Pinned uint32
	}
	type after struct {
		A      uint32
		Added  uint64
		Pinned uint32
	}

	b, err := Build("x", testConfig, []Entry{
		Offset("rq", "pinned", reflect.TypeFor[before](), "Pinned", unsafe.Offsetof(before{}.Pinned)),
	})
	require.NoError(t, err)
	a, err := Build("x", testConfig, []Entry{
		Offset("rq", "pinned", reflect.TypeFor[after](), "Pinned", unsafe.Offsetof(after{}.Pinned)),
	})
	require.NoError(t, err)

	assert.NotEqual(t, b.Records[0].Value, a.Records[0].Value)
	assert.NotEqual(t, b.Fingerprint(), a.Fingerprint())
	assert.NotEmpty(t, Diff(b, a))
}

func TestFingerprint_DependsOnConfig(t *testing.T) {
	recs := []Record{{Symbol: "RQ_nr_pinned", Value: 128, Struct: "rq", Member: "nr_pinned"}}

	base := Fingerprint(testConfig, recs)
	assert.Equal(t, base, Fingerprint(testConfig, recs))
	assert.NotEqual(t, base, Fingerprint(Config{Arch: "arm64", Scheduler: "cfs"}, recs))
	assert.NotEqual(t, base, Fingerprint(Config{Arch: "amd64", Scheduler: "cfs", Tags: []string{"numa_balancing"}}, recs))
	assert.NotEqual(t, base, Fingerprint(testConfig, nil))
}

func buildRQ(t *testing.T) *Artifact {
	t.Helper()
	a, err := Build("rq-offsets", testConfig, []Entry{
		Offset("rq", "nr_pinned", nil, "", 128),
	})
	require.NoError(t, err)
	return a
}

func TestRender_C(t *testing.T) {
	a := buildRQ(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, a, Options{Format: FormatC}))

	want := fmt.Sprintf(`#ifndef __RQ_OFFSETS_H__
#define __RQ_OFFSETS_H__
/*
 * DO NOT MODIFY.
 *
 * This file was generated by schedlayout
 *
 * arch: amd64
 * scheduler: cfs
 * tags: none
 * fingerprint: %#016x
 */

#define RQ_nr_pinned 128 /* offsetof(struct rq, nr_pinned) */

#endif
`, a.Fingerprint())
	assert.Equal(t, want, buf.String())
}

func TestRender_Go(t *testing.T) {
	a := buildRQ(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, a, Options{Format: FormatGo}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "// Code generated by schedlayout. DO NOT EDIT.\n"))
	assert.Contains(t, out, "\npackage rqoffsets\n")
	assert.Contains(t, out, "RQ_nr_pinned = 128 // offsetof(struct rq, nr_pinned)")

	buf.Reset()
	require.NoError(t, Render(&buf, a, Options{Format: FormatGo, Package: "layout"}))
	assert.Contains(t, buf.String(), "\npackage layout\n")
}

func TestRender_Deterministic(t *testing.T) {
	for _, f := range []Format{FormatGo, FormatC} {
		t.Run(string(f), func(t *testing.T) {
			var first, second bytes.Buffer
			require.NoError(t, Render(&first, buildRQ(t), Options{Format: f}))
			require.NoError(t, Render(&second, buildRQ(t), Options{Format: f}))
			assert.Equal(t, first.Bytes(), second.Bytes())
		})
	}
}

func TestRender_EmptyArtifact(t *testing.T) {
	a, err := Build("rq-offsets", Config{Arch: "amd64", Scheduler: "muqss", Tags: []string{"sched_muqss"}}, nil)
	require.NoError(t, err)
	assert.True(t, a.Empty())

	var goOut, cOut bytes.Buffer
	require.NoError(t, Render(&goOut, a, Options{Format: FormatGo}))
	require.NoError(t, Render(&cOut, a, Options{Format: FormatC}))

	assert.NotContains(t, goOut.String(), "const")
	assert.NotContains(t, cOut.String(), "#define RQ_")
	assert.Contains(t, cOut.String(), "#endif")

	for f, out := range map[Format]*bytes.Buffer{FormatGo: &goOut, FormatC: &cOut} {
		parsed, err := Parse(out, f)
		require.NoError(t, err)
		assert.Empty(t, parsed.Records)
		assert.Equal(t, []string{"sched_muqss"}, parsed.Config.Tags)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, buildRQ(t), Options{Format: "rust"}))
	assert.Zero(t, buf.Len())
}

func TestParse_RoundTrip(t *testing.T) {
	a, err := Build("rq-offsets", Config{Arch: "arm64", Scheduler: "cfs", Tags: []string{"detect_hung_task", "numa_balancing"}}, []Entry{
		Comment("run queue"),
		Offset("rq", "nr_pinned", nil, "", 136),
		Blank(),
		Offset("rq", "cpu_capacity", nil, "", 144),
	})
	require.NoError(t, err)

	for _, f := range []Format{FormatGo, FormatC} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, a, Options{Format: f}))

			parsed, err := Parse(&buf, f)
			require.NoError(t, err)
			assert.Empty(t, Diff(a, parsed))
		})
	}
}

func TestParse_DetectsTampering(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, buildRQ(t), Options{Format: FormatC}))

	edited := strings.Replace(buf.String(), "RQ_nr_pinned 128", "RQ_nr_pinned 136", 1)
	_, err := Parse(strings.NewReader(edited), FormatC)
	assert.ErrorContains(t, err, "does not match")

	_, err = Parse(strings.NewReader("#define RQ_nr_pinned 128\n"), FormatC)
	assert.ErrorContains(t, err, "no fingerprint")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("c")
	require.NoError(t, err)
	assert.Equal(t, FormatC, f)

	_, err = ParseFormat("h")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "include")
	path := filepath.Join(dir, "rq-offsets.h")
	a := buildRQ(t)

	require.NoError(t, WriteFile(zerolog.Nop(), path, a, Options{Format: FormatC}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, Render(&want, a, Options{Format: FormatC}))
	assert.Equal(t, want.Bytes(), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFile_FailureKeepsPreviousArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rq-offsets.h")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	err := WriteFile(zerolog.Nop(), path, buildRQ(t), Options{Format: "bogus"})
	require.Error(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(got))
}

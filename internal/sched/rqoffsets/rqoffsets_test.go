package rqoffsets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coral-mesh/schedlayout/internal/buildcfg"
	"github.com/coral-mesh/schedlayout/internal/offsets"
)

func TestBuild_MatchesConfiguration(t *testing.T) {
	a, err := Build()
	require.NoError(t, err)

	assert.Equal(t, Name, a.Name)
	assert.Equal(t, buildcfg.Arch(), a.Config.Arch)
	assert.Equal(t, buildcfg.Scheduler(), a.Config.Scheduler)
	assert.Equal(t, buildcfg.MuQSS, a.Empty())
}

func TestBuild_Deterministic(t *testing.T) {
	for _, f := range []offsets.Format{offsets.FormatGo, offsets.FormatC} {
		t.Run(string(f), func(t *testing.T) {
			render := func() []byte {
				a, err := Build()
				require.NoError(t, err)
				var buf bytes.Buffer
				require.NoError(t, offsets.Render(&buf, a, offsets.Options{Format: f}))
				return buf.Bytes()
			}
			assert.Equal(t, render(), render())
		})
	}
}

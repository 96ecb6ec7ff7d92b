//go:build sched_cacule

package sysctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacULETunables_Registered(t *testing.T) {
	for _, name := range []string{
		"interactivity_factor",
		"cacule_max_lifetime",
		"cache_factor",
		"cache_divisor",
		"starve_factor",
		"starve_divisor",
		"cacule_yield",
	} {
		_, ok := Lookup(name)
		require.True(t, ok, name)
	}

	tun, _ := Lookup("cacule_yield")
	assert.Equal(t, KindSigned, tun.Kind)
	assert.Equal(t, CaculeYield, tun.Value())
}

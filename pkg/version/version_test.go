package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coral-mesh/schedlayout/internal/buildcfg"
)

func TestBuildConfig(t *testing.T) {
	cfg := BuildConfig()
	assert.True(t, strings.HasPrefix(cfg, buildcfg.Scheduler()+"/"+buildcfg.Arch()+" tags="))
	if len(buildcfg.Tags()) == 0 {
		assert.True(t, strings.HasSuffix(cfg, "tags=none"))
	}
}

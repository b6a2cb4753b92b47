package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 4000, cfg.Infer.TimeoutMS)
	assert.True(t, cfg.Cache.Enabled)
	assert.NotEmpty(t, cfg.Cache.Dir)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TABMAP_THEME", "light")
	t.Setenv("TABMAP_INFER_ENDPOINT", "http://localhost:9999/infer")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "http://localhost:9999/infer", cfg.Infer.Endpoint)
}

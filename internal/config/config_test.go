package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.RequireLogin)
	assert.True(t, cfg.Probe.Enabled)
	assert.Equal(t, 0, cfg.Probe.MaxRetries)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tada.yaml")
	data := `theme: neon
require_login: true
log:
  level: debug
probe:
  enabled: false
  timeout_ms: 250
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.True(t, cfg.RequireLogin)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "tada.log", cfg.Log.File, "unset keys keep their default")
	assert.False(t, cfg.Probe.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Probe.Timeout())
	assert.True(t, cfg.TrackPointer)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tada.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", c.ListenAddr)
	assert.Equal(t, filepath.Join(".", "versions"), c.VersionsDir)
	assert.Equal(t, filepath.Join(".", "frontend"), c.FrontendDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.EqualValues(t, 10<<20, c.MaxBodyBytes)
	assert.True(t, c.MetricsOn())
	assert.Equal(t, 24*time.Hour, c.GC.TTL)
	assert.Equal(t, 30*time.Minute, c.GC.Interval)
	assert.False(t, c.Export.Enabled)
	assert.Equal(t, filepath.Join(".", "exports"), c.Export.FallbackDir)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	yml := `
listen_addr: ":9000"
root_dir: /srv/q
log_level: DEBUG
metrics_enabled: false
gc:
  ttl: 2h
  interval: 5m
export:
  enabled: true
  dir: /tmp/dl
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LISTEN_ADDR", ":9100")
	t.Setenv("VERSIONS_DIR", "/data/versions")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9100", c.ListenAddr)
	assert.Equal(t, "/data/versions", c.VersionsDir)
	assert.Equal(t, filepath.Join("/srv/q", "frontend"), c.FrontendDir)
	assert.Equal(t, "debug", c.LogLevel)
	assert.False(t, c.MetricsOn())
	assert.Equal(t, 2*time.Hour, c.GC.TTL)
	assert.Equal(t, 5*time.Minute, c.GC.Interval)
	assert.True(t, c.Export.Enabled)
	assert.Equal(t, "/tmp/dl", c.Export.Dir)
	assert.Equal(t, filepath.Join("/srv/q", "exports"), c.Export.FallbackDir)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("GC_TTL", "forever")

	_, err := Load()
	assert.ErrorContains(t, err, "GC_TTL")
}

func TestLoad_NegativeGCDisables(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("GC_TTL", "-1s")
	t.Setenv("GC_INTERVAL", "0s")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, -time.Second, c.GC.TTL)
	// ноль трактуется как «не задано»
	assert.Equal(t, 30*time.Minute, c.GC.Interval)
}

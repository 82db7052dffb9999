package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
http:
  address: ":9090"
  docs_dir: "docs"
storage:
  dir: "data"
cache:
  flights_ttl_seconds: 30
  cleanup_interval_seconds: 60
auth:
  admin_email: "admin@example.com"
  admin_password: "adminpw"
  session_ttl_minutes: 45
autosave:
  interval_minutes: 5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "data", cfg.Storage.Dir)
	assert.Equal(t, 30*time.Second, cfg.Cache.FlightsTTL())
	assert.Equal(t, time.Minute, cfg.Cache.CleanupInterval())
	assert.Equal(t, "admin@example.com", cfg.Auth.AdminEmail)
	assert.Equal(t, 45*time.Minute, cfg.Auth.SessionTTL())
	assert.Equal(t, 5*time.Minute, cfg.Autosave.Interval())
}

func TestLoadConfig_DataDirOverride(t *testing.T) {
	t.Setenv("FLIGHTBOOK_DATA_DIR", "/var/lib/flightbook")

	cfg, err := LoadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/flightbook", cfg.Storage.Dir)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadConfig_Malformed(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "http: [not a mapping"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

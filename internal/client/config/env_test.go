package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIBaseURL, "https://points.example.com/api")
	t.Setenv(EnvRequestTimeout, "7")
	t.Setenv(EnvRateLimit, "0")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg, nil))

	assert.Equal(t, "https://points.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 0.0, cfg.RequestsPerSecond)
	assert.Equal(t, "pointquest-admin.db", cfg.StateDBPath)
}

func TestParseEnv_FileDoesNotOverrideProcessEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("POINTQUEST_LOG_LEVEL=error\nPOINTQUEST_REQUEST_TIMEOUT=1m\n"), 0o600))
	t.Setenv(EnvLogLevel, "info")

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg, []string{"-env=" + path}))

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Minute, cfg.RequestTimeout)
}

func TestParseSecondsOrDuration(t *testing.T) {
	d, err := parseSecondsOrDuration("20")
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, d)

	d, err = parseSecondsOrDuration("1500ms")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)

	_, err = parseSecondsOrDuration("later")
	assert.Error(t, err)
}

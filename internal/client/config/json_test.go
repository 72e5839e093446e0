package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":    "https://www.example/api",
		"request_timeout": "10s",
		"rate_limit":      0,
	})

	t.Run("loads from flags", func(t *testing.T) {
		cfg := &Config{RequestsPerSecond: 10, LogLevel: "warn"}
		require.NoError(t, parseJson(cfg, []string{"-config", pathFlag}))

		assert.Equal(t, "https://www.example/api", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 0.0, cfg.RequestsPerSecond)
		assert.Equal(t, "warn", cfg.LogLevel, "absent keys keep earlier values")
	})

	t.Run("integer nanoseconds", func(t *testing.T) {
		p := writeTempJSON(t, dir, "ns.json", map[string]any{"request_timeout": int64(2 * time.Second)})
		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-c", p}))
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "http://defaults/api", RequestTimeout: 42 * time.Second}
		require.NoError(t, parseJson(cfg, []string{"-a", "ignored"}))

		assert.Equal(t, "http://defaults/api", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		assert.Error(t, parseJson(cfg, []string{"-c", bad}))
	})
}

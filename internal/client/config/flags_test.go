package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	base := Config{APIBaseURL: "http://default/api", RequestTimeout: 1500 * time.Millisecond, StateDBPath: "a.db"}

	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{name: "all flags", args: []string{"-a", "http://127.0.0.1:9090/api", "-t", "10", "-s", "b.db"},
			expected: &Config{APIBaseURL: "http://127.0.0.1:9090/api", RequestTimeout: 10 * time.Second, StateDBPath: "b.db"}},
		{name: "foreign flags ignored", args: []string{"-c", "cfg.json", "-x", "-s=c.db"},
			expected: &Config{APIBaseURL: "http://default/api", RequestTimeout: 1500 * time.Millisecond, StateDBPath: "c.db"}},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			err := parseFlags(&cfg, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, &cfg))
		})
	}
}

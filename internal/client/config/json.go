package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/pointquest-admin/internal/flagx"
	"github.com/dmitrijs2005/pointquest-admin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from a zero value.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	StateDB        *string         `json:"state_db"`
	RateLimit      *float64        `json:"rate_limit"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StateDB != nil {
		cfg.StateDBPath = *jc.StateDB
	}
	if jc.RateLimit != nil {
		cfg.RequestsPerSecond = *jc.RateLimit
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}

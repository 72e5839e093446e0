package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the admin console.
type Config struct {
	// APIBaseURL is the API root, base path included.
	APIBaseURL     string
	RequestTimeout time.Duration
	// StateDBPath is the SQLite file keeping the token and cached profile.
	StateDBPath string
	// RequestsPerSecond throttles API calls; 0 disables throttling.
	RequestsPerSecond float64
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.StateDBPath = "pointquest-admin.db"
	c.RequestsPerSecond = 10
	c.LogLevel = "warn"
}

// LoadConfig builds a Config from defaults, then the environment, then JSON
// and finally flags found in args (the process arguments without the
// program name). Later sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("rate limit must not be negative, got %v", c.RequestsPerSecond)
	}
	if c.StateDBPath == "" {
		return fmt.Errorf("state db path is empty")
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/pointquest-admin/internal/flagx"
)

const (
	EnvAPIBaseURL     = "POINTQUEST_API_BASE_URL"
	EnvRequestTimeout = "POINTQUEST_REQUEST_TIMEOUT"
	EnvStateDB        = "POINTQUEST_STATE_DB"
	EnvRateLimit      = "POINTQUEST_RATE_LIMIT"
	EnvLogLevel       = "POINTQUEST_LOG_LEVEL"
)

// parseEnv overlays cfg with POINTQUEST_* variables. A dotenv file named by
// -e/-env must exist; ./.env is read only if present. Variables already set
// in the process environment take precedence over the file.
func parseEnv(cfg *Config, args []string) error {
	fileValues := map[string]string{}
	if path := flagx.EnvFile(args); path != "" {
		m, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("read env file %s: %w", path, err)
		}
		fileValues = m
	} else if m, err := godotenv.Read(); err == nil {
		fileValues = m
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}

	if v, ok := lookup(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup(EnvStateDB); ok && v != "" {
		cfg.StateDBPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		d, err := parseSecondsOrDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvRateLimit); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimit, err)
		}
		cfg.RequestsPerSecond = rps
	}
	return nil
}

// parseSecondsOrDuration accepts "15s"-style durations and bare whole seconds.
func parseSecondsOrDuration(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}

// Package config loads runtime configuration for the PointQuest admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a dotenv file given with
//     -e or -env (or ./.env when present). Real environment variables win
//     over the file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Environment
//
//	POINTQUEST_API_BASE_URL     API root including its base path
//	POINTQUEST_REQUEST_TIMEOUT  "15s" or whole seconds
//	POINTQUEST_STATE_DB         path of the local session database
//	POINTQUEST_RATE_LIMIT       max requests per second, 0 for unlimited
//	POINTQUEST_LOG_LEVEL        debug, info, warn or error
//
// Flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-s string   local session database path
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "15s" or integer
// nanoseconds. Absent keys leave the earlier value in place:
//
//	{
//	  "api_base_url": "https://points.example.com/api",
//	  "request_timeout": "15s",
//	  "state_db": "/var/lib/pointquest/admin.db",
//	  "rate_limit": 5,
//	  "log_level": "debug"
//	}
package config

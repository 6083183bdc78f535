// Package config loads runtime configuration for the HomeFinder CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: HOMEFINDER_* variables, optionally seeded from a dotenv
//     file (-env, or ./.env when present). Real environment variables win
//     over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-d string     path of the local SQLite database
//	-s string     storage driver for session slots: sqlite, memory or redis
//	-r string     redis URL (redis driver only)
//	-l duration   simulated latency of login/register
//	-strict       verify credentials against the local account registry
//	-log-level    debug, info, warn or error
//	-log-format   text or json
//
// # JSON schema
//
// Durations may be strings like "1.5s" or integer nanoseconds:
//
//	{
//	  "database_path": "/home/me/.config/homefinder/client.db",
//	  "storage_driver": "sqlite",
//	  "simulated_latency": "1s",
//	  "reset_latency": "1.5s",
//	  "strict_auth": false,
//	  "token_validity": "720h",
//	  "log_level": "info"
//	}
package config

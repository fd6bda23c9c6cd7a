// Package config loads runtime configuration for the VidMarkt CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: VIDMARKT_API_URL, VIDMARKT_DB, VIDMARKT_LOG_LEVEL,
//     VIDMARKT_LOG_FORMAT. The binary loads a .env file into the
//     environment at start-up.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the marketplace API
//	-t int      request timeout (seconds)
//	-d string   local database path
//	-i int      online status check interval (seconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3001",
//	  "request_timeout": "10s",
//	  "database_path": "vidmarkt.db",
//	  "online_check_interval": "5s",
//	  "search_debounce": "300ms",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config

package config

import "os"

const (
	EnvAPIURL    = "VIDMARKT_API_URL"
	EnvDatabase  = "VIDMARKT_DB"
	EnvLogLevel  = "VIDMARKT_LOG_LEVEL"
	EnvLogFormat = "VIDMARKT_LOG_FORMAT"
)

// parseEnv overlays Config with VIDMARKT_* variables. A .env file, when the
// binary loads one, has already been merged into the environment.
func parseEnv(cfg *Config) {
	cfg.APIBaseURL = getEnv(EnvAPIURL, cfg.APIBaseURL)
	cfg.DatabasePath = getEnv(EnvDatabase, cfg.DatabasePath)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(EnvLogFormat, cfg.LogFormat)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

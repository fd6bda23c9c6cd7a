package config

import "os"

const (
	EnvListenAddr = "MOCKAPI_ADDR"
	EnvSecretKey  = "MOCKAPI_SECRET"
	EnvLogLevel   = "MOCKAPI_LOG_LEVEL"
)

func parseEnv(cfg *Config) {
	cfg.ListenAddr = getEnv(EnvListenAddr, cfg.ListenAddr)
	cfg.SecretKey = getEnv(EnvSecretKey, cfg.SecretKey)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// Package config handles configuration for the mock marketplace backend,
// including defaults, environment, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the mock backend.
//
// Fields:
//   - ListenAddr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - AccessTokenValidityDuration: access token lifetime.
//   - ShutdownTimeout: how long in-flight requests get on shutdown.
//   - LogLevel / LogFormat: slog handler settings.
type Config struct {
	ListenAddr                  string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	ShutdownTimeout             time.Duration
	LogLevel                    string
	LogFormat                   string
}

// LoadDefaults populates Config with development defaults. The listen
// address matches the client's default API URL.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3001"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

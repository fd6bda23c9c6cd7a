package config

import "time"

// Config holds runtime settings for the VidMarkt CLI.
//
// Fields:
//   - APIBaseURL: root URL of the marketplace REST backend.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - DatabasePath: SQLite file holding the session record.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - SearchDebounce: quiet period before a live-search query is sent.
//   - LogLevel, LogFormat: slog handler settings (debug|info|warn|error, text|json).
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	DatabasePath        string
	OnlineCheckInterval time.Duration
	SearchDebounce      time.Duration
	LogLevel            string
	LogFormat           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3001"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "vidmarkt.db"
	c.OnlineCheckInterval = 5 * time.Second
	c.SearchDebounce = 300 * time.Millisecond
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

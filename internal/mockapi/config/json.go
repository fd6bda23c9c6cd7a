package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vidmarkt/internal/flagx"
	"github.com/dmitrijs2005/vidmarkt/internal/timex"
)

// JsonConfig is the JSON shape of Config. Durations accept "1m" or
// integer nanoseconds; absent keys keep the current value.
type JsonConfig struct {
	ListenAddr                  string          `json:"listen_addr"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	ShutdownTimeout             *timex.Duration `json:"shutdown_timeout"`
	LogLevel                    string          `json:"log_level"`
	LogFormat                   string          `json:"log_format"`
}

// parseJson overlays Config with the file named by -c or -config.
// Read and unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	if jc.AccessTokenValidityDuration != nil {
		cfg.AccessTokenValidityDuration = jc.AccessTokenValidityDuration.Duration
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/vidmarkt/internal/flagx"
	"github.com/dmitrijs2005/vidmarkt/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. Absent keys leave the
// corresponding Config field untouched.
type JsonConfig struct {
	APIBaseURL          string          `json:"api_base_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	DatabasePath        string          `json:"database_path"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	SearchDebounce      *timex.Duration `json:"search_debounce"`
	LogLevel            string          `json:"log_level"`
	LogFormat           string          `json:"log_format"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing happens. Read and unmarshal
// errors panic.
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

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setDuration(&cfg.RequestTimeout, jc.RequestTimeout)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval)
	setDuration(&cfg.SearchDebounce, jc.SearchDebounce)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}

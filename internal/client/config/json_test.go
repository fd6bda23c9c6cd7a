package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "flag.json", map[string]any{
		"api_base_url":          "http://www.example:9000",
		"request_timeout":       "2s",
		"database_path":         "/var/lib/vidmarkt.db",
		"online_check_interval": 3000000000,
		"search_debounce":       "100ms",
		"log_level":             "warn",
		"log_format":            "json",
	})

	t.Run("loads from -config", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := defaults()
		parseJson(cfg)

		assert.Equal(t, "http://www.example:9000", cfg.APIBaseURL)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "/var/lib/vidmarkt.db", cfg.DatabasePath)
		assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, 100*time.Millisecond, cfg.SearchDebounce)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, "", "", map[string]any{"log_level": "error"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := defaults()
		parseJson(cfg)

		want := defaults()
		want.LogLevel = "error"
		assert.Equal(t, want, cfg)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := defaults()
		parseJson(cfg)
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		require.Panics(t, func() { parseJson(defaults()) })
	})

	t.Run("bad duration panics", func(t *testing.T) {
		bad := writeTempJSON(t, "", "", map[string]any{"request_timeout": "soon"})
		os.Args = []string{"testbin", "-c", bad}
		require.Panics(t, func() { parseJson(defaults()) })
	})
}

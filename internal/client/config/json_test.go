package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overlays present fields only", func(t *testing.T) {
		path := writeConfigFile(t, `{"api_url": "https://api.example.com", "request_timeout": "5s"}`)
		os.Args = []string{"cmd", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://api.example.com", cfg.APIURL)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "sitebloom.db", cfg.DatabaseDSN, "field absent in JSON keeps default")
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"cmd"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://localhost:3000", cfg.APIURL)
	})

	t.Run("panics on malformed file", func(t *testing.T) {
		path := writeConfigFile(t, `{not json`)
		os.Args = []string{"cmd", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseJson(cfg) })
	})
}

package config

import "time"

// Config holds runtime settings for the SiteBloom client.
//
// Fields:
//   - APIURL: base URL of the backend HTTP API, e.g. "https://api.example.com".
//   - RequestTimeout: per-request timeout for auth calls.
//   - DatabaseDSN: path/DSN of the local session database.
type Config struct {
	APIURL         string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "sitebloom.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

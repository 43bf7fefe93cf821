package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the Config fields that may be set from the environment.
type envConfig struct {
	APIURL         string        `env:"API_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	DatabaseDSN    string        `env:"DATABASE_DSN"`
}

// parseEnv overlays Config with values from environment variables. Variables
// that are unset leave the current values untouched. Panics on malformed
// values, matching the JSON loader's behavior.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIURL != "" {
		cfg.APIURL = ec.APIURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
}

// Package config loads runtime settings for the patients client.
//
// Sources are applied in order, later ones winning:
// defaults -> JSON file (-c/-config) -> environment (.env aware) -> flags.
package config

import "time"

// Config holds runtime settings for the patients client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionStorePath: SQLite DSN of the persisted session store.
type Config struct {
	ServerBaseURL    string
	RequestTimeout   time.Duration
	SessionStorePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.SessionStorePath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import "time"

// Config holds runtime settings for the Whaletown client.
//
// Fields:
//   - APIBaseURL: base URL of the identity service (endpoints live under /auth).
//   - RequestTimeout: upper bound applied to every network exchange.
//   - DatabaseDSN: path/DSN of the local sqlite database holding the session.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "whaletown.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

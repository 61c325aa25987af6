package config

import "time"

// Config holds runtime settings for the LearnTrack CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including any path prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - CredentialTTL: how long persisted credentials stay valid locally.
//   - DatabasePath: sqlite file backing the credential store.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	CredentialTTL  time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.CredentialTTL = 7 * 24 * time.Hour
	c.DatabasePath = "learntrack.db"
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

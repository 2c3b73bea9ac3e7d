// Package config handles configuration for the CLI, including defaults,
// JSON overlay, environment, and command-line flags.
package config

import "time"

// Config holds runtime settings for the inventory keeper.
//
// Fields:
//   - DatabaseDSN: path to the local SQLite database file.
//   - GeminiAPIKey: credential for the AI analysis collaborator. Empty
//     disables the feature (a fixed fallback string is returned instead).
//   - GeminiModel / GeminiEndpoint: text-generation model and API base URL.
//   - RequestDelay: artificial delay applied to storage operations to mimic
//     a remote API. Zero disables it; tests leave it at zero.
//   - LowStockThreshold: stock counts strictly below this (but above zero)
//     are reported as "low stock" on the dashboard.
type Config struct {
	DatabaseDSN       string
	GeminiAPIKey      string
	GeminiModel       string
	GeminiEndpoint    string
	RequestDelay      time.Duration
	LowStockThreshold int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "daraz.db"
	c.GeminiModel = "gemini-2.5-flash"
	c.GeminiEndpoint = "https://generativelanguage.googleapis.com"
	c.RequestDelay = 0
	c.LowStockThreshold = 5
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

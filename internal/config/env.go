package config

import "os"

// parseEnv overlays Config with values from the environment. Only the AI
// credential is sourced here; GEMINI_API_KEY takes precedence over the
// legacy API_KEY name.
func parseEnv(cfg *Config) {
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "daraz.db", cfg.DatabaseDSN)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.GeminiEndpoint)
	assert.Equal(t, time.Duration(0), cfg.RequestDelay)
	assert.Equal(t, 5, cfg.LowStockThreshold)
	assert.Empty(t, cfg.GeminiAPIKey)
}

func TestParseEnv(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	t.Setenv("API_KEY", "legacy")
	parseEnv(cfg)
	assert.Equal(t, "legacy", cfg.GeminiAPIKey)

	t.Setenv("GEMINI_API_KEY", "modern")
	parseEnv(cfg)
	assert.Equal(t, "modern", cfg.GeminiAPIKey)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-d", "test.db", "-l", "250", "-t", "3"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "test.db", cfg.DatabaseDSN)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestDelay)
	assert.Equal(t, 3, cfg.LowStockThreshold)
	// untouched by flags
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
}

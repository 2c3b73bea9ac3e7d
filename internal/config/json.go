package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/darazkeeper/internal/flagx"
	"github.com/dmitrijs2005/darazkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the delay either as a string like
// "300ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN       string         `json:"database_dsn"`
	GeminiAPIKey      string         `json:"gemini_api_key"`
	GeminiModel       string         `json:"gemini_model"`
	GeminiEndpoint    string         `json:"gemini_endpoint"`
	RequestDelay      timex.Duration `json:"request_delay"`
	LowStockThreshold int            `json:"low_stock_threshold"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Empty JSON fields keep the values already in cfg.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.GeminiAPIKey != "" {
		cfg.GeminiAPIKey = jc.GeminiAPIKey
	}
	if jc.GeminiModel != "" {
		cfg.GeminiModel = jc.GeminiModel
	}
	if jc.GeminiEndpoint != "" {
		cfg.GeminiEndpoint = jc.GeminiEndpoint
	}
	if jc.RequestDelay.Duration != 0 {
		cfg.RequestDelay = time.Duration(jc.RequestDelay.Duration)
	}
	if jc.LowStockThreshold != 0 {
		cfg.LowStockThreshold = jc.LowStockThreshold
	}
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/darazkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite database file
//	-m string   Gemini model name
//	-e string   Gemini API base endpoint
//	-l int      simulated request delay in milliseconds
//	-t int      low-stock threshold
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-e", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the database file")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "Gemini model name")
	fs.StringVar(&cfg.GeminiEndpoint, "e", cfg.GeminiEndpoint, "Gemini API base endpoint")
	requestDelay := fs.Int("l", int(cfg.RequestDelay.Milliseconds()), "simulated request delay (in milliseconds)")
	fs.IntVar(&cfg.LowStockThreshold, "t", cfg.LowStockThreshold, "low-stock threshold")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestDelay = time.Duration(*requestDelay) * time.Millisecond
}

// Package gtrends provides a client for the Google Trends widget API.
package gtrends

import (
	"os"
	"time"
)

// Config holds configuration for the Google Trends client.
type Config struct {
	BaseURL   string        // Base URL (e.g., "https://trends.google.com/trends/api")
	Timeout   time.Duration // HTTP request timeout
	HL        string        // UI language parameter
	TZ        int           // Timezone offset in minutes
	Timeframe string        // Query window (e.g., "today 12-m")
}

// LoadConfig loads Google Trends configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("TRENDS_BASE_URL")
	if base == "" {
		base = "https://trends.google.com/trends/api"
	}
	return Config{
		BaseURL:   base,
		Timeout:   10 * time.Second,
		HL:        "en-US",
		TZ:        360,
		Timeframe: "today 12-m",
	}
}

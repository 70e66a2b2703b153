// Package worldbank provides a client for the World Bank indicators API.
package worldbank

import (
	"os"
	"time"
)

// Config holds configuration for the World Bank API client.
type Config struct {
	BaseURL   string        // Base URL for the API (e.g., "https://api.worldbank.org/v2")
	Timeout   time.Duration // HTTP request timeout (kept short; a slow indicator must not stall the bundle)
	DateRange string        // Indicator query range (e.g., "2021:2024")
}

// LoadConfig loads World Bank configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("WORLDBANK_BASE_URL")
	if base == "" {
		base = "https://api.worldbank.org/v2"
	}
	return Config{
		BaseURL:   base,
		Timeout:   3 * time.Second,
		DateRange: "2021:2024",
	}
}

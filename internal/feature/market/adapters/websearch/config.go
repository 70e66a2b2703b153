// Package websearch provides a client for a JSON web-search API.
package websearch

import (
	"os"
	"time"
)

// Config holds configuration for the web search client.
type Config struct {
	BaseURL        string        // Search endpoint URL
	APIKey         string        // Bearer token for the search API
	Timeout        time.Duration // HTTP request timeout
	FetchContent   bool          // 上位結果の本文をreadabilityで抽出してスニペットを補強するか
	ContentTimeout time.Duration // 本文取得のタイムアウト
}

// LoadConfig loads web search configuration from environment variables.
func LoadConfig() Config {
	return Config{
		BaseURL:        os.Getenv("SEARCH_API_URL"),
		APIKey:         os.Getenv("SEARCH_API_KEY"),
		Timeout:        10 * time.Second,
		FetchContent:   os.Getenv("SEARCH_FETCH_CONTENT") == "true",
		ContentTimeout: 10 * time.Second,
	}
}

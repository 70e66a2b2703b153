// Package gemini はGoogle Gemini APIを使用した生成クライアントを提供します。
package gemini

import (
	"os"
	"strconv"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
	// DefaultRequestsPerMinute は生成呼び出しのレート上限のデフォルト値です。
	DefaultRequestsPerMinute = 10
)

// Config holds configuration for the generation client.
type Config struct {
	APIKey            string // Gemini API key; empty means the credential is not configured
	Model             string // model identifier (e.g. "gemini-2.5-flash")
	RequestsPerMinute int    // client-side rate limit for generation calls
}

// LoadConfig loads generation-client configuration from environment variables.
func LoadConfig() Config {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	rpm := DefaultRequestsPerMinute
	if v := os.Getenv("GEMINI_REQUESTS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rpm = n
		}
	}
	return Config{
		APIKey:            os.Getenv("GEMINI_API_KEY"),
		Model:             model,
		RequestsPerMinute: rpm,
	}
}

package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port  string
	Debug bool

	// Gemini generative-language API
	GeminiAPIKey   string
	GeminiModel    string
	GeminiEndpoint string

	// Timeouts and limits
	GeminiTimeoutSeconds int
	FetchTimeoutSeconds  int
	MaxUploadMB          int
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Gemini
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiEndpoint: getEnv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta"),

		// Timeouts and limits
		GeminiTimeoutSeconds: getEnvInt("GEMINI_TIMEOUT_SECONDS", 45),
		FetchTimeoutSeconds:  getEnvInt("FETCH_TIMEOUT_SECONDS", 30),
		MaxUploadMB:          getEnvInt("MAX_UPLOAD_MB", 10),
	}

	return cfg
}

// Validate checks if required configuration is present.
// GEMINI_API_KEY is intentionally not checked here: a missing key must surface
// per request as a configuration error, so the server still starts without one
// and operators see the instruction in the response instead of a crash loop.
func (c *Config) Validate() error {
	if c.GeminiModel == "" {
		return &ConfigError{Field: "GEMINI_MODEL", Message: "GEMINI_MODEL must not be empty"}
	}
	if c.GeminiEndpoint == "" {
		return &ConfigError{Field: "GEMINI_ENDPOINT", Message: "GEMINI_ENDPOINT must not be empty"}
	}
	if c.GeminiTimeoutSeconds <= 0 {
		return &ConfigError{Field: "GEMINI_TIMEOUT_SECONDS", Message: "GEMINI_TIMEOUT_SECONDS must be positive"}
	}
	if c.FetchTimeoutSeconds <= 0 {
		return &ConfigError{Field: "FETCH_TIMEOUT_SECONDS", Message: "FETCH_TIMEOUT_SECONDS must be positive"}
	}
	if c.MaxUploadMB <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_MB", Message: "MAX_UPLOAD_MB must be positive"}
	}
	return nil
}

// HasAPIKey reports whether a usable Gemini API key is configured.
// Placeholder values copied verbatim from .env.example count as missing.
func (c *Config) HasAPIKey() bool {
	key := strings.TrimSpace(c.GeminiAPIKey)
	if key == "" {
		return false
	}
	lower := strings.ToLower(key)
	if strings.HasPrefix(lower, "your") || lower == "changeme" {
		return false
	}
	return true
}

// MaxUploadBytes returns the upload ceiling in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) * 1024 * 1024
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// RedisAddr is the address of the Redis instance that persists the tour
	// and settings blobs. When empty the server runs on an in-memory store,
	// which is convenient for local hacking but survives nothing.
	RedisAddr string

	// RedisPassword is the optional Redis AUTH password.
	RedisPassword string

	// GeminiAPIKey authorizes the AI generation endpoints. When empty those
	// endpoints serve their fallback content instead of failing startup.
	GeminiAPIKey string

	// QuoteMarginRate is the flat markup applied to quote base costs.
	// Defaults to 0.20. Set QUOTE_MARGIN_RATE to override.
	QuoteMarginRate float64

	// RateLimitRPS caps the sustained request rate per server instance.
	// Defaults to 20.
	RateLimitRPS float64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error when a numeric variable fails to parse or is out of range.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
	}

	var err error
	cfg.QuoteMarginRate, err = getEnvFloat("QUOTE_MARGIN_RATE", 0.20)
	if err != nil {
		return Config{}, err
	}
	if cfg.QuoteMarginRate < 0 {
		return Config{}, fmt.Errorf("QUOTE_MARGIN_RATE must not be negative")
	}

	cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 20)
	if err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvFloat parses the environment variable named by key as a float64,
// or returns fallback if the variable is not set or is empty.
func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid value %q", key, v)
	}
	return f, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

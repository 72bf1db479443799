package core

import (
	"os"
	"strconv"
)

// DefaultRecommendLimit bounds the recommendation list when nothing else is
// configured.
const DefaultRecommendLimit = 3

// Config holds the application configuration.
type Config struct {
	LogLevel       string // debug, info, warn, error
	DataDir        string // Base directory for the .navigator store
	RecommendLimit int    // Max entries returned by the ranking engine
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	limit := DefaultRecommendLimit
	if raw := os.Getenv("RECOMMEND_LIMIT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	cfg := &Config{
		LogLevel:       logLevel,
		DataDir:        getEnvOrDefault("NAVIGATOR_DIR", ".navigator"),
		RecommendLimit: limit,
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

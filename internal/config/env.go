package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment represents the application environment
type Environment string

const (
	// Development environment - localhost, debug enabled
	Development Environment = "development"
	// Production environment - real domain, production settings
	Production Environment = "production"
)

// EnvConfig holds environment-specific configuration
type EnvConfig struct {
	Env      Environment
	Debug    bool
	LogLevel string

	// Overrides for the JSON config; zero values mean "not set".
	Listen        string
	MetricsListen string
	KeysFile      string
	AllowedOrigin string
	RateLimitRPM  int // -1 when unset
}

// LoadEnv loads environment configuration from environment variables
func LoadEnv() *EnvConfig {
	env := getEnvOrDefault("APP_ENV", "development")

	cfg := &EnvConfig{
		Env:      Environment(strings.ToLower(env)),
		LogLevel: strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
	}

	switch cfg.Env {
	case Production:
		cfg.Debug = getEnvOrDefault("DEBUG", "false") == "true"
	default:
		cfg.Env = Development // Normalize unknown envs to development
		cfg.Debug = getEnvOrDefault("DEBUG", "true") == "true"
	}
	if cfg.LogLevel == "debug" {
		cfg.Debug = true
	}

	cfg.Listen = os.Getenv("THEME_LISTEN")
	cfg.MetricsListen = os.Getenv("THEME_METRICS_LISTEN")
	cfg.KeysFile = os.Getenv("THEME_KEYS_FILE")
	cfg.AllowedOrigin = os.Getenv("THEME_ALLOWED_ORIGIN")
	cfg.RateLimitRPM = parseIntOrDefault(os.Getenv("THEME_RATE_LIMIT_RPM"), -1)

	return cfg
}

// IsDevelopment returns true if running in development mode
func (e *EnvConfig) IsDevelopment() bool {
	return e.Env == Development
}

// IsProduction returns true if running in production mode
func (e *EnvConfig) IsProduction() bool {
	return e.Env == Production
}

// String returns the environment name
func (e Environment) String() string {
	return string(e)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntOrDefault parses a non-negative int, returning default on error
func parseIntOrDefault(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}

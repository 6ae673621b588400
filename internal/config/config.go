// Package config loads and validates all environment variables at startup.
// Every other package receives typed values — nothing reads os.Getenv directly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the fully-parsed application configuration.
//
// There is deliberately no OpenAI API key here: the chat credential belongs
// to the end user and arrives with each request. The server only configures
// which model those per-request keys are used against.
type Config struct {
	// ── Server ────────────────────────────────────────────────────────────────
	Port          string // default "8080"
	Env           string // "development" | "staging" | "production"
	AllowedOrigin string // CORS origin for the SPA, e.g. "https://oncoscreen.app"

	// ── Chat ──────────────────────────────────────────────────────────────────
	OpenAIModel string // default "gpt-4.1-2025-04-14"

	// ── Sessions ──────────────────────────────────────────────────────────────
	SessionTTL    time.Duration // idle time before a session is evicted; default 2h
	SweepInterval time.Duration // janitor cadence; default 10m
}

// Load reads all environment variables and returns a validated Config.
// It automatically loads a .env file from the working directory when present,
// so plain `go run ./cmd/api` works in development without any wrapper.
// Real environment variables always take precedence over .env values.
func Load() (*Config, error) {
	// godotenv never overrides variables that are already set.
	_ = godotenv.Load()

	c := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4.1-2025-04-14"),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 2*time.Hour),
		SweepInterval: getEnvAsDuration("SWEEP_INTERVAL", 10*time.Minute),
	}

	return c, c.validate()
}

func (c *Config) validate() error {
	var errs []error

	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT must be numeric, got %q", c.Port))
	}
	if c.OpenAIModel == "" {
		errs = append(errs, fmt.Errorf("OPENAI_MODEL must not be empty"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	if c.SweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", c.SweepInterval))
	}

	return errors.Join(errs...)
}

// ─── HELPERS ─────────────────────────────────────────────────────────────────

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	// Try a plain integer first (treated as seconds, minutes, or hours
	// depending on the variable name).
	if value, err := strconv.Atoi(valueStr); err == nil {
		switch {
		case strings.Contains(key, "HOURS"):
			return time.Duration(value) * time.Hour
		case strings.Contains(key, "MINUTES"):
			return time.Duration(value) * time.Minute
		default:
			return time.Duration(value) * time.Second
		}
	}
	// Fall back to Go duration syntax: "30s", "5m", "1h", etc.
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	return defaultValue
}

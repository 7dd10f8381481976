// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port            string
	FrontendURL     string
	DBPath          string
	GeminiAPIKey    string
	GeminiModel     string
	RateLimitMax    int
	RateLimitWindow time.Duration
	GuideTaskCount  int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		FrontendURL:     getEnv("FRONTEND_URL", ""),
		DBPath:          getEnv("DB_PATH", "./data/guidepost.db"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 60),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MS", 60000)) * time.Millisecond,
		GuideTaskCount:  getEnvInt("GUIDE_TASK_COUNT", 3),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be > 0")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_MS must be > 0")
	}
	if c.GuideTaskCount < 3 || c.GuideTaskCount > 4 {
		return fmt.Errorf("GUIDE_TASK_COUNT must be 3 or 4")
	}
	return nil
}

// AIConfigured returns true if a Gemini credential is available.
func (c *Config) AIConfigured() bool {
	return c.GeminiAPIKey != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.RateLimitMax != 60 {
		t.Errorf("Expected default limit 60, got %d", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("Expected default window 60s, got %v", cfg.RateLimitWindow)
	}
	if cfg.GuideTaskCount != 3 {
		t.Errorf("Expected default task count 3, got %d", cfg.GuideTaskCount)
	}
	if cfg.AIConfigured() {
		t.Error("AI should not be configured without a key")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("RATE_LIMIT_MAX", "30")
	t.Setenv("RATE_LIMIT_WINDOW_MS", "30000")
	t.Setenv("GUIDE_TASK_COUNT", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %q", cfg.Port)
	}
	if !cfg.AIConfigured() {
		t.Error("AI should be configured with a key")
	}
	if cfg.RateLimitMax != 30 || cfg.RateLimitWindow != 30*time.Second {
		t.Errorf("Expected 30 per 30s, got %d per %v", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
	if cfg.GuideTaskCount != 4 {
		t.Errorf("Expected task count 4, got %d", cfg.GuideTaskCount)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"zero limit", func(c *Config) { c.RateLimitMax = 0 }},
		{"zero window", func(c *Config) { c.RateLimitWindow = 0 }},
		{"task count too low", func(c *Config) { c.GuideTaskCount = 2 }},
		{"task count too high", func(c *Config) { c.GuideTaskCount = 5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Port:            "8080",
				DBPath:          "./x.db",
				RateLimitMax:    60,
				RateLimitWindow: time.Minute,
				GuideTaskCount:  3,
			}
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}

// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DatabaseURL             string
	GeminiAPIKey            string
	LogLevel                string
	UserID                  string
	PlannedCheckInterval    time.Duration
	PlannedProcessTimezone  string
	PlannedProcessingOnBoot bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		UserID:       os.Getenv("USER_ID"),
	}

	cfg.PlannedCheckInterval = 30 * time.Minute
	if minStr := os.Getenv("PLANNED_CHECK_INTERVAL_MINUTES"); minStr != "" {
		if m, err := strconv.Atoi(minStr); err == nil && m > 0 {
			cfg.PlannedCheckInterval = time.Duration(m) * time.Minute
		}
	}

	cfg.PlannedProcessTimezone = "Asia/Singapore"
	if tz := os.Getenv("PLANNED_PROCESS_TIMEZONE"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			cfg.PlannedProcessTimezone = tz
		}
	}

	cfg.PlannedProcessingOnBoot = os.Getenv("PLANNED_PROCESSING_ON_BOOT") != "false"

	// Validate required configuration.
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}

	if c.UserID == "" {
		errs = append(errs, "USER_ID is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

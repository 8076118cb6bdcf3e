package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Dataset
	DataFile string

	// Logging
	LogLevel string

	// Cosmetic
	BotName string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataFile: envStr("DATA_FILE", "data/10k_company_metrics.csv"),
		LogLevel: envStr("LOG_LEVEL", "info"),
		BotName:  envStr("BOT_NAME", "FinancialBot"),
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	if c.DataFile == "" {
		errs = append(errs, "DATA_FILE is required")
	}
	if c.LogLevel == "" {
		errs = append(errs, "LOG_LEVEL must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// --- helpers ---

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

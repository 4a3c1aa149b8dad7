// Package cli provides common CLI initialization utilities shared by
// cmd/vendite, cmd/vendite-query, and cmd/vendite-seed.
package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"vendite/internal/config"
	applog "vendite/internal/log"
)

// SetupLogger initializes structured logging and sets it as the process
// default. The level comes from LOG_LEVEL (debug|info|warn|error).
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     levelFromEnv(),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)
	return logger
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// Package bootstrap loads configuration, logging and the database for CLI
// commands.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/supporthub/supporthub/internal/infrastructure/config"
	"github.com/supporthub/supporthub/internal/infrastructure/database"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

// ResolveEnv lets SUPPORTHUB_ENV override the --env flag.
func ResolveEnv(flagValue string) string {
	if envVar := os.Getenv("SUPPORTHUB_ENV"); envVar != "" {
		return envVar
	}
	return flagValue
}

// MapEnvToGinMode translates a deployment environment into a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

// Config loads configuration and initializes the process logger.
func Config(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = MapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger.NewLogger(), nil
}

// ConfigAndDatabase is Config followed by database.Init. Callers own
// database.Close.
func ConfigAndDatabase(env string) (*config.Config, logger.Interface, error) {
	cfg, log, err := Config(env)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, log, nil
}

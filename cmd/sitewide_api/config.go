package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/sitewide-search/internal/server"
	"github.com/DjordjeVuckovic/sitewide-search/internal/storage/factory"
	"github.com/DjordjeVuckovic/sitewide-search/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type SitewideConfig struct {
	LogLevel      slog.Level
	Server        server.Config
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*SitewideConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/sitewide_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &SitewideConfig{
		LogLevel:      parseLogLevel(os.Getenv("LOG_LEVEL")),
		Server:        *serverCfg,
		StorageConfig: *storageCfg,
	}, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

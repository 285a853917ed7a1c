package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/calcfin/internal/config"
	"github.com/DjordjeVuckovic/calcfin/internal/storage/factory"
	"github.com/DjordjeVuckovic/calcfin/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcApiConfig struct {
	App           *config.Config
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*CalcApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	appCfg, err := config.Load(env.GetOr("CALC_CONFIG", config.DefaultPath))
	if err != nil {
		slog.Error("Failed to load application configuration", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &CalcApiConfig{
		App:           appCfg,
		StorageConfig: *storageCfg,
	}, nil
}

package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	"github.com/DjordjeVuckovic/calcfin/internal/storage"
	"github.com/DjordjeVuckovic/calcfin/internal/storage/es"
	"github.com/DjordjeVuckovic/calcfin/internal/storage/pg"
	"github.com/DjordjeVuckovic/calcfin/pkg/config/env"
	"github.com/DjordjeVuckovic/calcfin/pkg/utils"
)

const defaultHistoryFile = "data/history.json"

type StorageConfig struct {
	storage.Type
	Capacity int
	FilePath string
	Pg       *pg.PoolConfig
	Es       *es.ClientConfig
}

// LoadEnv reads the history storage settings. STORAGE_TYPE defaults to in_mem.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(env.GetOr("STORAGE_TYPE", string(storage.InMem)))
	if !storageType.Valid() {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.ES, storage.PG, storage.InMem, storage.JSON})
	}

	capacity, err := env.GetInt("HISTORY_CAPACITY", domain.HistoryDefaultCapacity)
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_CAPACITY: %w", err)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("HISTORY_CAPACITY must be positive, got %d", capacity)
	}

	cfg := &StorageConfig{
		Type:     storageType,
		Capacity: capacity,
	}

	switch storageType {
	case storage.JSON:
		cfg.FilePath = env.GetOr("HISTORY_FILE", defaultHistoryFile)
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitAndTrim(os.Getenv("ES_ADDRESSES")),
			IndexName: env.GetOr("ES_INDEX_NAME", "calc_history"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return cfg, nil
}

package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/calcfin/internal/storage"
	"github.com/DjordjeVuckovic/calcfin/internal/storage/es"
	"github.com/DjordjeVuckovic/calcfin/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/calcfin/internal/storage/jsonfile"
	"github.com/DjordjeVuckovic/calcfin/internal/storage/pg"
	"github.com/DjordjeVuckovic/calcfin/pkg/server"
)

// HistoryBackend bundles a store with what the server needs to supervise it.
type HistoryBackend struct {
	Store  storage.HistoryStore
	Health server.HealthChecker
	Close  func()
}

// NewHistoryBackend creates the history store selected by cfg.Type.
func NewHistoryBackend(ctx context.Context, cfg StorageConfig) (*HistoryBackend, error) {
	noop := func() {}

	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL config")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		if err := pool.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		store, err := pg.NewStorer(pool, cfg.Capacity)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &HistoryBackend{Store: store, Health: pg.NewHealthChecker(pool), Close: pool.Close}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch config")
		}
		store, err := es.NewStorer(ctx, *cfg.Es, cfg.Capacity)
		if err != nil {
			return nil, err
		}
		return &HistoryBackend{Store: store, Health: server.NewOkHealthChecker(), Close: noop}, nil

	case storage.JSON:
		store, err := jsonfile.NewJsonFileStorer(cfg.FilePath, cfg.Capacity)
		if err != nil {
			return nil, err
		}
		return &HistoryBackend{Store: store, Health: server.NewOkHealthChecker(), Close: noop}, nil

	case storage.InMem:
		return &HistoryBackend{Store: in_mem.NewInMemStorer(cfg.Capacity), Health: server.NewOkHealthChecker(), Close: noop}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

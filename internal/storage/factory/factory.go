package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/ts-perf/internal/storage"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage/es"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage/pg"
	"github.com/DjordjeVuckovic/ts-perf/pkg/server"
)

// NewStore creates the report store selected by cfg together with a health
// checker for its backend.
func NewStore(ctx context.Context, cfg *StorageConfig) (storage.Store, server.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		store, err := pg.NewStore(pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pg.NewHealthChecker(pool), nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		store, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return store, server.HealthCheckerFunc(store.Healthy), nil

	case storage.InMem:
		return in_mem.NewStore(), server.NewOkHealthChecker(), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

package recipe

import (
	"context"
	"fmt"

	"nutrition-estimator/internal/infrastructure/config"
	"nutrition-estimator/internal/pkg/common"
)

// Cache stores fetched ingredient lists keyed by normalized dish name.
// Implementations are safe for concurrent use. Get and Set are best-effort:
// cache faults are logged, never propagated into the pipeline.
type Cache interface {
	Get(ctx context.Context, dishName string) ([]common.IngredientLine, bool)
	Set(ctx context.Context, dishName string, lines []common.IngredientLine)
	Close() error
}

// NewCache builds the configured cache backend. Returns nil (no caching)
// when the cache is disabled.
func NewCache(cfg *config.Config) (Cache, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("recipe cache disabled")
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case "memory":
		return NewMemoryCache(&cfg.Cache), nil
	case "redis":
		return NewRedisCache(&cfg.Cache)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

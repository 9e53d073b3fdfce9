package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/sieve"
	redisAdapter "github.com/aretw0/sieve/internal/adapters/redis"
	"github.com/aretw0/sieve/internal/config"
	"github.com/aretw0/sieve/pkg/observability"
)

// CreateEngine initializes a sieve engine with standard CLI conventions:
// the store from the project file (Redis when an address is configured,
// memory otherwise) and optional metrics.
//
// The returned closer releases the store connection; it is a no-op for
// the in-memory store.
func CreateEngine(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (*sieve.Engine, func() error, error) {
	opts := []sieve.Option{
		sieve.WithLogger(logger),
	}
	closer := func() error { return nil }

	if cfg.Redis.Address != "" {
		storeOpts := []redisAdapter.Option{}
		if cfg.Redis.Prefix != "" {
			storeOpts = append(storeOpts, redisAdapter.WithPrefix(cfg.Redis.Prefix))
		}
		store := redisAdapter.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, storeOpts...)
		opts = append(opts, sieve.WithStore(store))
		closer = store.Close
	}

	if metrics != nil {
		opts = append(opts, sieve.WithMetrics(metrics))
	}

	engine, err := sieve.New(cfg.Schema, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}

	return engine, closer, nil
}

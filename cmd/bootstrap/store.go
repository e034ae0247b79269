package bootstrap

import (
	"context"
	"fmt"

	"eatery-api/internal/infra/kv"
	"eatery-api/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewKVStore,
	),
)

// NewKVStore selects the key-value backend holding the reservation and
// notification collections based on STORE_DRIVER.
func NewKVStore(lc fx.Lifecycle, cfg config.Config) (kv.Store, error) {
	switch cfg.Store.Driver {
	case "", "memory":
		return kv.NewMemoryStore(), nil

	case "redis":
		store, cleanup, err := kv.NewRedisStore(cfg.Redis)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		return store, nil

	case "postgres":
		store, cleanup, err := kv.NewPostgresStore(context.Background(), cfg.DB)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}

func appendCleanup(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
}

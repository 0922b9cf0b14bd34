package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskcal/internal/backend/redisstore"
	"taskcal/internal/backend/sqlite"
	"taskcal/internal/config"
	"taskcal/internal/logging"
	"taskcal/internal/service"
	"taskcal/internal/store"
)

// OpenLocal opens the store selected in cfg.Settings and returns a Local
// service over it. The caller closes it through io.Closer.
func OpenLocal(ctx context.Context, cfg *config.Config) (service.Service, error) {
	kv, err := openKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	cfg.Logger().Debug("store opened", zap.String(logging.KeyDriver, cfg.Settings.Store.Driver))
	return service.NewLocal(store.NewRepository(kv), service.WithLogger(cfg.Logger())), nil
}

func openKV(ctx context.Context, cfg *config.Config) (store.KV, error) {
	s := cfg.Settings.Store
	switch s.Driver {
	case config.DriverMemory:
		return store.NewMemory(), nil
	case config.DriverRedis:
		kv, err := redisstore.Open(ctx, s.RedisURL, s.RedisPrefix)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case config.DriverSQLite, "":
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		kv, err := sqlite.Open(cfg.DatabasePath())
		if err != nil {
			return nil, err
		}
		return kv, nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", s.Driver)
	}
}

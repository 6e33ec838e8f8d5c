package memcache_fx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"trippin/internal/catalog"
	"trippin/internal/config"
	"trippin/internal/infra"
	mem "trippin/pkg/memcache"
)

var Module = fx.Provide(provideRedisClient, provideCatalogStore)

func provideRedisClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := infra.InitRedis(ctx, cfg.RedisURL, logger)
	if err != nil || client == nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func provideCatalogStore(client *redis.Client) catalog.Store {
	if client == nil {
		return mem.NewMemoryStore()
	}
	return mem.NewRedisStore(client, "trippin:")
}

package catalog

import (
	"context"
	"time"
)

// Store caches encoded catalogs by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func cacheKey(normalized string) string {
	return "catalog:" + normalized
}

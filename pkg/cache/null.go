package cache

import (
	"context"
	"time"
)

// NullCache turns result caching off. The CLI selects it for --no-cache
// and the "none" backend, and falls back to it when a backend fails to open.
type NullCache struct{}

// NewNullCache returns the cache used when results must not be reused.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get reports a miss for every key.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the result.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)

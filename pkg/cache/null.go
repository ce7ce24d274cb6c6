package cache

import (
	"context"
	"time"
)

// NullCache discards writes and misses every read. It keeps call sites free
// of nil checks when caching is disabled or no usable directory exists.
type NullCache struct{}

// NewNullCache returns the no-op cache.
func NewNullCache() NullCache {
	return NullCache{}
}

func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (NullCache) Close() error {
	return nil
}

var _ Cache = NullCache{}

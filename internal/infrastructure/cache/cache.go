package cache

import (
	"context"
	"time"
)

// Cache stores JSON-serialisable values under string keys with a TTL
type Cache interface {
	// Get decodes the cached value into dest and reports whether the key was present
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

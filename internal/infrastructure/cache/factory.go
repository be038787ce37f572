package cache

import (
	"github.com/amunitsiia/shop/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache backends
const (
	TypeRedis  = "redis"
	TypeMemory = "memory"
)

// New picks the cache backend from configuration. A redis backend without a
// connected client falls back to memory with a warning.
func New(cfg config.CacheConfig, client redis.UniversalClient, logger *zap.Logger) Cache {
	if cfg.Type == TypeRedis {
		if client != nil {
			logger.Info("using Redis cache")
			return NewRedisCache(client)
		}
		logger.Warn("Redis cache configured but no Redis connection available, falling back to in-memory cache. " +
			"Instances will not share cached navigation.")
	}
	return NewInMemoryCache()
}

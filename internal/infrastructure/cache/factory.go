package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/inventory"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/infrastructure/config"
)

// Cache backends selectable via configuration
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// StockCacheFactory creates stock caches based on configuration
type StockCacheFactory struct {
	cacheConfig config.CacheConfig
	redisConfig config.RedisConfig
	logger      *zap.Logger
}

// NewStockCacheFactory creates a new factory
func NewStockCacheFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, logger *zap.Logger) *StockCacheFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockCacheFactory{
		cacheConfig: cacheCfg,
		redisConfig: redisCfg,
		logger:      logger,
	}
}

// CreateStockCache creates the configured stock cache backend. When Redis is
// configured but unreachable it falls back to the in-memory backend so that
// catalog requests keep working on a cold start.
func (f *StockCacheFactory) CreateStockCache() (inventory.StockCache, error) {
	switch f.cacheConfig.Backend {
	case BackendRedis:
		cache, err := NewRedisStockCache(RedisConfig{
			Host:     f.redisConfig.Host,
			Port:     f.redisConfig.Port,
			Password: f.redisConfig.Password,
			DB:       f.redisConfig.DB,
		})
		if err != nil {
			f.logger.Warn("redis stock cache unavailable, falling back to in-memory",
				zap.String("addr", f.redisConfig.Addr()),
				zap.Error(err))
			return NewInMemoryStockCache(WithInMemoryLogger(f.logger)), nil
		}
		f.logger.Info("using redis stock cache", zap.String("addr", f.redisConfig.Addr()))
		return cache, nil
	case BackendMemory, "":
		return NewInMemoryStockCache(WithInMemoryLogger(f.logger)), nil
	default:
		return nil, fmt.Errorf("unknown stock cache backend %q", f.cacheConfig.Backend)
	}
}

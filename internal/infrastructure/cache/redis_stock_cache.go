package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/inventory"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/shared"
)

// RedisStockCache implements inventory.StockCache using Redis. Suitable for
// distributed deployments where multiple instances share the stock cache.
type RedisStockCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisStockCache creates a new Redis-backed stock cache
func NewRedisStockCache(cfg RedisConfig) (*RedisStockCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStockCache{
		client:    client,
		keyPrefix: "catalog:stock:",
	}, nil
}

// NewRedisStockCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisStockCacheWithClient(client *redis.Client, keyPrefix string) *RedisStockCache {
	if keyPrefix == "" {
		keyPrefix = "catalog:stock:"
	}
	return &RedisStockCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a stock snapshot. A miss returns (nil, nil).
func (c *RedisStockCache) Get(ctx context.Context, sku string) (*inventory.StockSnapshot, error) {
	data, err := c.client.Get(ctx, c.keyPrefix+sku).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrCacheUnavailable, err)
	}

	var snapshot inventory.StockSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten
		// by the next recomputation.
		return nil, nil
	}
	return &snapshot, nil
}

// Set stores a stock snapshot with the given TTL
func (c *RedisStockCache) Set(ctx context.Context, sku string, snapshot *inventory.StockSnapshot, ttl time.Duration) error {
	if snapshot == nil || ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal stock snapshot: %w", err)
	}

	if err := c.client.Set(ctx, c.keyPrefix+sku, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrCacheUnavailable, err)
	}
	return nil
}

// Invalidate removes a SKU's snapshot
func (c *RedisStockCache) Invalidate(ctx context.Context, sku string) error {
	if err := c.client.Del(ctx, c.keyPrefix+sku).Err(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrCacheUnavailable, err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisStockCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisStockCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisStockCache implements StockCache
var _ inventory.StockCache = (*RedisStockCache)(nil)

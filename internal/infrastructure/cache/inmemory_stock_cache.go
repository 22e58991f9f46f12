package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/inventory"
)

// Constants for in-memory cache configuration
const (
	defaultCleanupInterval = 30 * time.Second
)

// InMemoryStockCache implements inventory.StockCache using in-process
// storage. Suitable for single-instance deployments and testing.
type InMemoryStockCache struct {
	entries sync.Map // map[string]*cacheEntry[inventory.StockSnapshot]
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	// Stats for monitoring
	hits   int64
	misses int64
}

// cacheEntry wraps a cached value with expiration time
type cacheEntry[T any] struct {
	value     *T
	expiresAt time.Time
}

// isExpired checks if the cache entry has expired
func (e *cacheEntry[T]) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// InMemoryStockCacheOption is a functional option for configuring the cache
type InMemoryStockCacheOption func(*InMemoryStockCache)

// WithInMemoryLogger sets the logger for the cache
func WithInMemoryLogger(logger *zap.Logger) InMemoryStockCacheOption {
	return func(c *InMemoryStockCache) {
		c.logger = logger
	}
}

// NewInMemoryStockCache creates a new in-memory stock cache and starts its
// background expiry sweep.
func NewInMemoryStockCache(opts ...InMemoryStockCacheOption) *InMemoryStockCache {
	cache := &InMemoryStockCache{
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(cache)
	}

	go cache.cleanupExpired()

	return cache
}

// cacheKey generates the cache key for a SKU snapshot
func (c *InMemoryStockCache) cacheKey(sku string) string {
	return "stock:" + sku
}

// Get retrieves a stock snapshot from cache. A miss returns (nil, nil).
func (c *InMemoryStockCache) Get(ctx context.Context, sku string) (*inventory.StockSnapshot, error) {
	key := c.cacheKey(sku)

	if value, ok := c.entries.Load(key); ok {
		entry := value.(*cacheEntry[inventory.StockSnapshot])
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			c.logger.Debug("stock cache hit", zap.String("sku", sku))
			return entry.value, nil
		}
		// Expired, remove from cache
		c.entries.Delete(key)
	}

	atomic.AddInt64(&c.misses, 1)
	c.logger.Debug("stock cache miss", zap.String("sku", sku))
	return nil, nil
}

// Set stores a stock snapshot in cache
func (c *InMemoryStockCache) Set(ctx context.Context, sku string, snapshot *inventory.StockSnapshot, ttl time.Duration) error {
	if snapshot == nil || ttl <= 0 {
		return nil
	}

	entry := &cacheEntry[inventory.StockSnapshot]{
		value:     snapshot,
		expiresAt: time.Now().Add(ttl),
	}

	c.entries.Store(c.cacheKey(sku), entry)
	c.logger.Debug("cached stock snapshot",
		zap.String("sku", sku),
		zap.Duration("ttl", ttl))
	return nil
}

// Invalidate removes a SKU's snapshot from cache
func (c *InMemoryStockCache) Invalidate(ctx context.Context, sku string) error {
	c.entries.Delete(c.cacheKey(sku))
	c.logger.Debug("invalidated stock snapshot", zap.String("sku", sku))
	return nil
}

// Close releases any resources held by the cache
func (c *InMemoryStockCache) Close() error {
	// Only close once
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// GetStats returns cache statistics
func (c *InMemoryStockCache) GetStats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Count returns the number of entries in the cache
func (c *InMemoryStockCache) Count() int {
	count := 0
	c.entries.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// cleanupExpired periodically removes expired entries from the cache
func (c *InMemoryStockCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			removed := 0
			c.entries.Range(func(key, value any) bool {
				if entry, ok := value.(*cacheEntry[inventory.StockSnapshot]); ok && entry.isExpired() {
					c.entries.Delete(key)
					removed++
				}
				return true
			})
			if removed > 0 {
				c.logger.Debug("swept expired stock snapshots", zap.Int("removed", removed))
			}
		}
	}
}

// Ensure InMemoryStockCache implements StockCache
var _ inventory.StockCache = (*InMemoryStockCache)(nil)

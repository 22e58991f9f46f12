package inventory

import (
	"context"
	"time"
)

// InventoryRepository is the read-only inventory feed
type InventoryRepository interface {
	// FindAll loads every inventory row for the scope of one catalog query
	FindAll(ctx context.Context) ([]InventoryRecord, error)
	// FindBySKUs returns the rows matching any of the given SKU spellings
	FindBySKUs(ctx context.Context, skus []string) ([]InventoryRecord, error)
}

// StockCache caches per-SKU stock snapshots for UI-facing lookups. Entries
// are advisory and may be served stale up to their TTL; catalog correctness
// never depends on the cache being warm. Implementations must not block
// concurrent misses for the same key: duplicate recomputation is cheaper
// than contention, and last write wins.
type StockCache interface {
	Get(ctx context.Context, sku string) (*StockSnapshot, error)
	Set(ctx context.Context, sku string, snapshot *StockSnapshot, ttl time.Duration) error
	Invalidate(ctx context.Context, sku string) error
}

package inventory

import (
	"context"
	"time"

	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/catalog"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/inventory"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/shared"
	"go.uber.org/zap"
)

// DefaultCacheTTL bounds how stale a served stock snapshot may be
const DefaultCacheTTL = 30 * time.Second

// StockService answers UI-facing single-SKU stock queries. Results come from
// the same inventory feed as the listing pipeline and are cached for a short
// TTL. The cache is an optimization only: every cache failure degrades to a
// recompute, never to a request failure.
type StockService struct {
	inventory inventory.InventoryRepository
	cache     inventory.StockCache
	ttl       time.Duration
	logger    *zap.Logger
}

// NewStockService creates a new StockService. A zero ttl falls back to
// DefaultCacheTTL.
func NewStockService(
	inventoryRepo inventory.InventoryRepository,
	cache inventory.StockCache,
	ttl time.Duration,
	logger *zap.Logger,
) *StockService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &StockService{
		inventory: inventoryRepo,
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
	}
}

// Lookup returns the stock snapshot for one SKU, served from cache when a
// fresh entry exists under either separator spelling. Concurrent misses for
// the same SKU recompute independently; last write wins.
func (s *StockService) Lookup(ctx context.Context, sku string) (*inventory.StockSnapshot, error) {
	if catalog.CanonicalSKU(sku) == "" {
		return nil, shared.ErrInvalidSKU
	}

	forms := catalog.NormalizedForms(sku)
	for _, form := range forms {
		snapshot, err := s.cache.Get(ctx, form)
		if err != nil {
			s.logger.Warn("stock cache read failed", zap.String("sku", form), zap.Error(err))
			break
		}
		if snapshot != nil {
			return snapshot, nil
		}
	}

	return s.recompute(ctx, sku, forms)
}

// Refresh drops any cached entry for the SKU and recomputes it
func (s *StockService) Refresh(ctx context.Context, sku string) (*inventory.StockSnapshot, error) {
	if catalog.CanonicalSKU(sku) == "" {
		return nil, shared.ErrInvalidSKU
	}

	forms := catalog.NormalizedForms(sku)
	for _, form := range forms {
		if err := s.cache.Invalidate(ctx, form); err != nil {
			s.logger.Warn("stock cache invalidation failed", zap.String("sku", form), zap.Error(err))
		}
	}
	return s.recompute(ctx, sku, forms)
}

// recompute reads the inventory feed for one SKU and refills the cache. The
// snapshot is stored under both spellings of the queried SKU and of the SKU
// the feed actually returned, so repeated queries in either naming
// convention hit the cache.
func (s *StockService) recompute(ctx context.Context, sku string, forms []string) (*inventory.StockSnapshot, error) {
	records, err := s.inventory.FindBySKUs(ctx, forms)
	if err != nil {
		if ctx.Err() != nil {
			return nil, shared.ErrRequestCancelled
		}
		s.logger.Warn("inventory lookup failed, reporting zero stock", zap.String("sku", sku), zap.Error(err))
		records = nil
	}

	merged := inventory.NewStockIndex(records).Lookup(sku)
	snapshot := inventory.NewStockSnapshot(sku, merged)

	keys := make(map[string]struct{}, len(forms)*2)
	for _, form := range forms {
		keys[form] = struct{}{}
	}
	for _, record := range records {
		for _, form := range catalog.NormalizedForms(record.SKU) {
			keys[form] = struct{}{}
		}
	}
	for key := range keys {
		if err := s.cache.Set(ctx, key, &snapshot, s.ttl); err != nil {
			s.logger.Warn("stock cache write failed", zap.String("sku", key), zap.Error(err))
		}
	}

	return &snapshot, nil
}

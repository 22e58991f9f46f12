package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/inventory"
)

func testSnapshot(sku string, total int) *inventory.StockSnapshot {
	snapshot := inventory.NewStockSnapshot(sku, inventory.MergedStock{
		Total: total,
		ByLocation: map[string]int{
			inventory.LocationStore: total,
		},
	})
	return &snapshot
}

func TestInMemoryStockCache_Get(t *testing.T) {
	cache := NewInMemoryStockCache()
	defer cache.Close()

	ctx := context.Background()

	// Test cache miss
	snapshot, err := cache.Get(ctx, "CA4021-R")
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	// Set and read back
	err = cache.Set(ctx, "CA4021-R", testSnapshot("CA4021-R", 7), 5*time.Second)
	require.NoError(t, err)

	snapshot, err = cache.Get(ctx, "CA4021-R")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "CA4021-R", snapshot.SKU)
	assert.Equal(t, 7, snapshot.Total)
	assert.True(t, snapshot.Available)
}

func TestInMemoryStockCache_Set(t *testing.T) {
	cache := NewInMemoryStockCache()
	defer cache.Close()

	ctx := context.Background()

	// Set nil snapshot (should be no-op)
	err := cache.Set(ctx, "CA4021-R", nil, 5*time.Second)
	require.NoError(t, err)

	snapshot, err := cache.Get(ctx, "CA4021-R")
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	// Set with zero TTL (should be no-op)
	err = cache.Set(ctx, "CA4021-R", testSnapshot("CA4021-R", 1), 0)
	require.NoError(t, err)

	snapshot, err = cache.Get(ctx, "CA4021-R")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestInMemoryStockCache_Expiry(t *testing.T) {
	cache := NewInMemoryStockCache()
	defer cache.Close()

	ctx := context.Background()

	err := cache.Set(ctx, "CA4021-R", testSnapshot("CA4021-R", 3), 20*time.Millisecond)
	require.NoError(t, err)

	snapshot, err := cache.Get(ctx, "CA4021-R")
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	time.Sleep(40 * time.Millisecond)

	snapshot, err = cache.Get(ctx, "CA4021-R")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestInMemoryStockCache_Invalidate(t *testing.T) {
	cache := NewInMemoryStockCache()
	defer cache.Close()

	ctx := context.Background()

	err := cache.Set(ctx, "CA4021-R", testSnapshot("CA4021-R", 3), 5*time.Second)
	require.NoError(t, err)

	err = cache.Invalidate(ctx, "CA4021-R")
	require.NoError(t, err)

	snapshot, err := cache.Get(ctx, "CA4021-R")
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	// Invalidating an absent key is a no-op
	err = cache.Invalidate(ctx, "ZZ999-X")
	require.NoError(t, err)
}

func TestInMemoryStockCache_Stats(t *testing.T) {
	cache := NewInMemoryStockCache()
	defer cache.Close()

	ctx := context.Background()

	_, _ = cache.Get(ctx, "CA4021-R")
	require.NoError(t, cache.Set(ctx, "CA4021-R", testSnapshot("CA4021-R", 3), 5*time.Second))
	_, _ = cache.Get(ctx, "CA4021-R")

	hits, misses := cache.GetStats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, 1, cache.Count())
}

func TestInMemoryStockCache_ConcurrentAccess(t *testing.T) {
	cache := NewInMemoryStockCache()
	defer cache.Close()

	ctx := context.Background()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = cache.Set(ctx, "CA4021-R", testSnapshot("CA4021-R", j), time.Second)
				_, _ = cache.Get(ctx, "CA4021-R")
			}
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}

	snapshot, err := cache.Get(ctx, "CA4021-R")
	require.NoError(t, err)
	assert.NotNil(t, snapshot)
}

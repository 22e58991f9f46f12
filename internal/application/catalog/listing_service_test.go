package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/catalog"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/inventory"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockVariantRepository is a mock implementation of catalog.VariantRepository
type MockVariantRepository struct {
	mock.Mock
}

func (m *MockVariantRepository) FindForListing(ctx context.Context, filter catalog.FeedFilter) ([]catalog.VariantRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.VariantRecord), args.Error(1)
}

func (m *MockVariantRepository) FindByBaseSKU(ctx context.Context, baseSKU string) ([]catalog.VariantRecord, error) {
	args := m.Called(ctx, baseSKU)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.VariantRecord), args.Error(1)
}

func (m *MockVariantRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockInventoryRepository is a mock implementation of inventory.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindAll(ctx context.Context) ([]inventory.InventoryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) FindBySKUs(ctx context.Context, skus []string) ([]inventory.InventoryRecord, error) {
	args := m.Called(ctx, skus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryRecord), args.Error(1)
}

// stubClassifier classifies by a fixed lookup table
type stubClassifier struct {
	tags map[string]string
}

func (c stubClassifier) Classify(displayName string) string {
	if tag, ok := c.tags[displayName]; ok {
		return tag
	}
	return "ostatni"
}

// stubResolver echoes the stored path with a fixed prefix
type stubResolver struct{}

func (stubResolver) Resolve(storedPath string) string {
	if storedPath == "" {
		return "https://img.test/placeholder.jpg"
	}
	return "https://img.test/" + storedPath
}

func newTestListingService(variants *MockVariantRepository, inv *MockInventoryRepository, tags map[string]string) *ListingService {
	return NewListingService(variants, inv, stubClassifier{tags: tags}, stubResolver{}, zap.NewNop())
}

func TestListingService_List_AggregatesColorVariants(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindForListing", mock.Anything, mock.Anything).Return([]catalog.VariantRecord{
		{ID: 1, SKU: "AB12-N", Name: "Wallet - N", Price: 1290, Brand: "Piquadro"},
		{ID: 2, SKU: "AB12-R", Name: "Wallet - R", Price: 1290, Brand: "Piquadro"},
	}, nil)
	inventoryRepo.On("FindAll", mock.Anything).Return([]inventory.InventoryRecord{
		{SKU: "AB12-R", StockStore: 5},
	}, nil)

	result, err := service.List(context.Background(), ListingQuery{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	item := result.Items[0]
	assert.Equal(t, "AB12", item.BaseSKU)
	assert.Equal(t, "AB12-R", item.SKU)
	assert.Equal(t, "Wallet", item.Name)
	assert.Equal(t, 5, item.AggregatedStock)
	assert.True(t, item.Available)
	assert.Len(t, item.ColorVariants, 2)
	assert.Equal(t, 1, result.Pagination.TotalItems)
}

func TestListingService_List_VariantFeedFailureIsFatal(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindForListing", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := service.List(context.Background(), ListingQuery{})

	assert.ErrorIs(t, err, shared.ErrFeedUnavailable)
}

func TestListingService_List_InventoryFeedFailureFailsOpen(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindForListing", mock.Anything, mock.Anything).Return([]catalog.VariantRecord{
		{ID: 1, SKU: "AB12-N", Name: "Wallet - N", Price: 1290},
		{ID: 2, SKU: "CD34-BLU", Name: "Backpack - BLU", Price: 4590},
	}, nil)
	inventoryRepo.On("FindAll", mock.Anything).Return(nil, errors.New("feed down"))

	result, err := service.List(context.Background(), ListingQuery{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		assert.Zero(t, item.AggregatedStock)
		assert.False(t, item.Available)
	}
}

func TestListingService_List_AvailabilityFirstSort(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindForListing", mock.Anything, mock.Anything).Return([]catalog.VariantRecord{
		{ID: 1, SKU: "AA11-N", Name: "Aktovka - N", Price: 100},
		{ID: 2, SKU: "BB22-N", Name: "Batoh - N", Price: 200},
		{ID: 3, SKU: "CC33-N", Name: "Cestovka - N", Price: 300},
	}, nil)
	inventoryRepo.On("FindAll", mock.Anything).Return([]inventory.InventoryRecord{
		{SKU: "BB22-N", StockOutlet: 1},
	}, nil)

	// Requested order is price ascending; availability still wins
	result, err := service.List(context.Background(), ListingQuery{
		Page: 1, Limit: 10, SortBy: SortByPrice, SortOrder: "asc",
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "BB22-N", result.Items[0].SKU)

	seenUnavailable := false
	for _, item := range result.Items {
		if !item.Available {
			seenUnavailable = true
		} else {
			assert.False(t, seenUnavailable, "available item after unavailable one")
		}
	}
}

func TestListingService_List_ConjunctiveFilters(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, map[string]string{
		"Wallet":   "penezenky",
		"Backpack": "batohy",
	})

	variantRepo.On("FindForListing", mock.Anything, mock.Anything).Return([]catalog.VariantRecord{
		{ID: 1, SKU: "AB12-N", Name: "Wallet - N", Price: 1290, Brand: "Piquadro"},
		{ID: 2, SKU: "CD34-BLU", Name: "Backpack - BLU", Price: 4590, Brand: "Piquadro"},
		{ID: 3, SKU: "EF56-N", Name: "Wallet - N", Price: 890, Brand: "Bric's"},
	}, nil)
	inventoryRepo.On("FindAll", mock.Anything).Return([]inventory.InventoryRecord{
		{SKU: "AB12-N", StockStore: 2},
		{SKU: "EF56-N", StockStore: 1},
	}, nil)

	priceMin := 1000
	result, err := service.List(context.Background(), ListingQuery{
		Page: 1, Limit: 10,
		Filters: ListingFilters{
			Category:    "penezenky",
			Brand:       "piquadro",
			PriceMin:    &priceMin,
			InStockOnly: true,
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "AB12-N", result.Items[0].SKU)
}

func TestListingService_List_SearchFiltersGroups(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindForListing", mock.Anything, mock.Anything).Return([]catalog.VariantRecord{
		{ID: 1, SKU: "AB12-N", Name: "Wallet - N"},
		{ID: 2, SKU: "CD34-BLU", Name: "Backpack - BLU"},
	}, nil)
	inventoryRepo.On("FindAll", mock.Anything).Return([]inventory.InventoryRecord{}, nil)

	result, err := service.List(context.Background(), ListingQuery{
		Page: 1, Limit: 10,
		Filters: ListingFilters{Search: "cd34"},
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "CD34", result.Items[0].BaseSKU)
}

func TestListingService_List_Pagination(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variants := make([]catalog.VariantRecord, 0, 15)
	for i := 0; i < 15; i++ {
		variants = append(variants, catalog.VariantRecord{
			ID:   int64(i + 1),
			SKU:  fmt.Sprintf("SKU%02d-N", i),
			Name: fmt.Sprintf("Product %02d - N", i),
		})
	}
	variantRepo.On("FindForListing", mock.Anything, mock.Anything).Return(variants, nil)
	inventoryRepo.On("FindAll", mock.Anything).Return([]inventory.InventoryRecord{}, nil)

	result, err := service.List(context.Background(), ListingQuery{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.Equal(t, 2, result.Pagination.CurrentPage)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.Equal(t, 15, result.Pagination.TotalItems)
	assert.False(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)
}

func TestListingService_List_OutOfRangePageIsEmpty(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindForListing", mock.Anything, mock.Anything).Return([]catalog.VariantRecord{
		{ID: 1, SKU: "AB12-N", Name: "Wallet - N"},
	}, nil)
	inventoryRepo.On("FindAll", mock.Anything).Return([]inventory.InventoryRecord{}, nil)

	result, err := service.List(context.Background(), ListingQuery{Page: 9, Limit: 10})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.Pagination.TotalItems)
	assert.False(t, result.Pagination.HasNext)
}

func TestListingService_List_EmptyFilteredSetIsNotAnError(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindForListing", mock.Anything, mock.Anything).Return([]catalog.VariantRecord{}, nil)
	inventoryRepo.On("FindAll", mock.Anything).Return([]inventory.InventoryRecord{}, nil)

	result, err := service.List(context.Background(), ListingQuery{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Pagination.TotalItems)
	assert.Equal(t, 0, result.Pagination.TotalPages)
}

func TestListingService_List_SeparatorMismatchStillMatchesStock(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	// Variant feed spells the SKU with dashes, inventory with a slash
	variantRepo.On("FindForListing", mock.Anything, mock.Anything).Return([]catalog.VariantRecord{
		{ID: 1, SKU: "AB-12-R", Name: "Wallet - R"},
	}, nil)
	inventoryRepo.On("FindAll", mock.Anything).Return([]inventory.InventoryRecord{
		{SKU: "AB/12-R", StockStore: 3},
	}, nil)

	result, err := service.List(context.Background(), ListingQuery{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 3, result.Items[0].AggregatedStock)
	assert.True(t, result.Items[0].Available)
}

func TestListingService_List_FeedFetchCapHasHeadroom(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	var captured catalog.FeedFilter
	variantRepo.On("FindForListing", mock.Anything, mock.MatchedBy(func(f catalog.FeedFilter) bool {
		captured = f
		return true
	})).Return([]catalog.VariantRecord{}, nil)
	inventoryRepo.On("FindAll", mock.Anything).Return([]inventory.InventoryRecord{}, nil)

	_, err := service.List(context.Background(), ListingQuery{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Greater(t, captured.MaxRows, 20, "fetch cap must exceed the page window")
	assert.LessOrEqual(t, captured.MaxRows, maxFeedRows)
}

func TestListingService_Get_AggregatesFamily(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindByBaseSKU", mock.Anything, "AB12").Return([]catalog.VariantRecord{
		{ID: 1, SKU: "AB12-N", Name: "Wallet - N", Price: 1290},
		{ID: 2, SKU: "AB12-R", Name: "Wallet - R", Price: 1290},
	}, nil)
	inventoryRepo.On("FindBySKUs", mock.Anything, mock.Anything).Return([]inventory.InventoryRecord{
		{SKU: "AB12/R", StockStore: 2},
	}, nil)

	group, err := service.Get(context.Background(), "AB12-N")

	require.NoError(t, err)
	assert.Equal(t, "AB12", group.BaseSKU)
	assert.Equal(t, 2, group.AggregatedStock)
	assert.True(t, group.Available)
	assert.Len(t, group.ColorVariants, 2)
	// The in-stock member wins canonical selection
	assert.Equal(t, "AB12-R", group.SKU)
}

func TestListingService_Get_UnknownFamily(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindByBaseSKU", mock.Anything, "ZZ99").Return([]catalog.VariantRecord{}, nil)

	_, err := service.Get(context.Background(), "ZZ99-N")

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListingService_Get_FeedFailure(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindByBaseSKU", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := service.Get(context.Background(), "AB12-N")

	assert.ErrorIs(t, err, shared.ErrFeedUnavailable)
}

func TestListingService_Get_InventoryFailureReportsZeroStock(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("FindByBaseSKU", mock.Anything, "AB12").Return([]catalog.VariantRecord{
		{ID: 1, SKU: "AB12-N", Name: "Wallet"},
	}, nil)
	inventoryRepo.On("FindBySKUs", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	group, err := service.Get(context.Background(), "AB12")

	require.NoError(t, err)
	assert.Equal(t, 0, group.AggregatedStock)
	assert.False(t, group.Available)
}

func TestListingService_Brands(t *testing.T) {
	variantRepo := new(MockVariantRepository)
	inventoryRepo := new(MockInventoryRepository)
	service := newTestListingService(variantRepo, inventoryRepo, nil)

	variantRepo.On("DistinctBrands", mock.Anything).Return([]string{"Bric's", "Piquadro"}, nil)

	brands, err := service.Brands(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Bric's", "Piquadro"}, brands)
}

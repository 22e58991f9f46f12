package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/catalog"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/inventory"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/shared"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// The variant feed is fetched with headroom over the display page so
	// that deduplication shrinkage does not starve later pages.
	feedHeadroomFactor = 4
	maxFeedRows        = 1000
)

// ListingService runs the catalog aggregation pipeline: variant feed +
// inventory feed -> merged stock -> product groups -> filtered, sorted,
// paginated listing. Pure per-request; the only shared state lives behind
// the repositories.
type ListingService struct {
	variants   catalog.VariantRepository
	inventory  inventory.InventoryRepository
	classifier catalog.Classifier
	images     ImageResolver
	collator   *collate.Collator
	logger     *zap.Logger
}

// NewListingService creates a new ListingService
func NewListingService(
	variants catalog.VariantRepository,
	inventoryRepo inventory.InventoryRepository,
	classifier catalog.Classifier,
	images ImageResolver,
	logger *zap.Logger,
) *ListingService {
	return &ListingService{
		variants:   variants,
		inventory:  inventoryRepo,
		classifier: classifier,
		images:     images,
		collator:   collate.New(language.Czech),
		logger:     logger,
	}
}

// List executes one catalog listing query.
//
// Variant-feed failure is fatal to the request. Inventory-feed failure is
// not: the listing proceeds with zero stock everywhere, so the catalog stays
// browsable when the stock export is down.
func (s *ListingService) List(ctx context.Context, query ListingQuery) (*ListingResult, error) {
	query = normalizeQuery(query)

	variants, err := s.variants.FindForListing(ctx, s.feedFilter(query))
	if err != nil {
		if ctx.Err() != nil {
			return nil, shared.ErrRequestCancelled
		}
		s.logger.Error("variant feed failed", zap.Error(err))
		return nil, shared.ErrFeedUnavailable
	}

	index := s.loadStockIndex(ctx)
	if ctx.Err() != nil {
		// A timed-out inventory read must fail the request rather than
		// return groups with a partial stock sum.
		return nil, shared.ErrRequestCancelled
	}

	groups := catalog.BuildGroups(variants, index.TotalFor)
	filtered := s.applyFilters(groups, query.Filters)
	s.sortGroups(filtered, query.SortBy, query.SortOrder)

	page := paginate(filtered, query.Page, query.Limit)
	items := make([]ProductGroupResponse, 0, len(page))
	for _, group := range page {
		items = append(items, toGroupResponse(group, s.images))
	}

	paginated := shared.NewPaginated(items, int64(len(filtered)), query.Page, query.Limit)
	return &ListingResult{
		Items: items,
		Pagination: PaginationResponse{
			CurrentPage: query.Page,
			TotalPages:  paginated.TotalPages,
			TotalItems:  len(filtered),
			HasNext:     paginated.HasNext(),
			HasPrev:     paginated.HasPrev(),
		},
	}, nil
}

// Get returns the product group a single SKU belongs to, aggregated across
// every color variant of its family. The same fail-open inventory rule as
// List applies.
func (s *ListingService) Get(ctx context.Context, sku string) (*ProductGroupResponse, error) {
	base := catalog.ExtractBaseSKU(sku)
	if base == "" {
		return nil, shared.ErrInvalidSKU
	}

	variants, err := s.variants.FindByBaseSKU(ctx, base)
	if err != nil {
		if ctx.Err() != nil {
			return nil, shared.ErrRequestCancelled
		}
		s.logger.Error("variant feed failed", zap.String("base_sku", base), zap.Error(err))
		return nil, shared.ErrFeedUnavailable
	}
	if len(variants) == 0 {
		return nil, shared.ErrNotFound
	}

	skus := make([]string, 0, len(variants)*2)
	for _, v := range variants {
		skus = append(skus, catalog.NormalizedForms(v.SKU)...)
	}
	records, err := s.inventory.FindBySKUs(ctx, skus)
	if err != nil {
		if ctx.Err() != nil {
			return nil, shared.ErrRequestCancelled
		}
		s.logger.Warn("inventory feed failed, treating all stock as zero",
			zap.String("base_sku", base), zap.Error(err))
		records = nil
	}

	groups := catalog.BuildGroups(variants, inventory.NewStockIndex(records).TotalFor)
	if len(groups) == 0 {
		return nil, shared.ErrNotFound
	}
	response := toGroupResponse(groups[0], s.images)
	return &response, nil
}

// Brands returns the distinct brand names present in the variant feed
func (s *ListingService) Brands(ctx context.Context) ([]string, error) {
	brands, err := s.variants.DistinctBrands(ctx)
	if err != nil {
		s.logger.Error("brand lookup failed", zap.Error(err))
		return nil, shared.ErrFeedUnavailable
	}
	return brands, nil
}

func normalizeQuery(query ListingQuery) ListingQuery {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = defaultPageSize
	}
	if query.Limit > maxPageSize {
		query.Limit = maxPageSize
	}
	if query.SortBy == "" {
		query.SortBy = SortByStock
	}
	if query.SortOrder == "" {
		query.SortOrder = "desc"
	}
	return query
}

func (s *ListingService) feedFilter(query ListingQuery) catalog.FeedFilter {
	maxRows := query.Page * query.Limit * feedHeadroomFactor
	if maxRows > maxFeedRows {
		maxRows = maxFeedRows
	}
	return catalog.FeedFilter{
		Brand:    query.Filters.Brand,
		Search:   query.Filters.Search,
		PriceMin: query.Filters.PriceMin,
		PriceMax: query.Filters.PriceMax,
		MaxRows:  maxRows,
	}
}

// loadStockIndex reads the full inventory feed, degrading to an empty index
// (all stock zero) when the feed errors.
func (s *ListingService) loadStockIndex(ctx context.Context) *inventory.StockIndex {
	records, err := s.inventory.FindAll(ctx)
	if err != nil {
		s.logger.Warn("inventory feed failed, treating all stock as zero", zap.Error(err))
		return inventory.NewStockIndex(nil)
	}
	return inventory.NewStockIndex(records)
}

// applyFilters keeps groups satisfying every supplied filter
func (s *ListingService) applyFilters(groups []catalog.ProductGroup, filters ListingFilters) []catalog.ProductGroup {
	kept := make([]catalog.ProductGroup, 0, len(groups))
	for _, group := range groups {
		if !s.matches(group, filters) {
			continue
		}
		kept = append(kept, group)
	}
	return kept
}

func (s *ListingService) matches(group catalog.ProductGroup, filters ListingFilters) bool {
	if filters.InStockOnly && !group.Available {
		return false
	}
	if filters.Brand != "" && !strings.EqualFold(group.Canonical.Brand, filters.Brand) {
		return false
	}
	if filters.PriceMin != nil && group.Canonical.Price < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && group.Canonical.Price > *filters.PriceMax {
		return false
	}
	if filters.Category != "" {
		tag := s.classifier.Classify(group.DisplayName)
		if !strings.EqualFold(tag, filters.Category) {
			return false
		}
	}
	if filters.Search != "" {
		needle := strings.ToLower(filters.Search)
		if !strings.Contains(strings.ToLower(group.DisplayName), needle) &&
			!strings.Contains(strings.ToLower(group.Canonical.Name), needle) &&
			!containsSKU(group.MemberSKUs, needle) {
			return false
		}
	}
	return true
}

func containsSKU(skus []string, needle string) bool {
	for _, sku := range skus {
		if strings.Contains(strings.ToLower(sku), needle) {
			return true
		}
	}
	return false
}

// sortGroups orders groups availability-first, then by the requested field
// and direction within each availability bucket. String fields use Czech
// collation; numeric fields compare directly.
func (s *ListingService) sortGroups(groups []catalog.ProductGroup, sortBy, sortOrder string) {
	descending := strings.EqualFold(sortOrder, "desc")

	less := func(a, b catalog.ProductGroup) bool {
		if a.Available != b.Available {
			return a.Available
		}

		var cmp int
		switch sortBy {
		case SortByName:
			cmp = s.collator.CompareString(a.DisplayName, b.DisplayName)
		case SortByPrice:
			cmp = compareInt(a.Canonical.Price, b.Canonical.Price)
		case SortByID:
			cmp = compareInt64(a.Canonical.ID, b.Canonical.ID)
		default:
			cmp = compareInt(a.SortPriority, b.SortPriority)
		}
		if cmp == 0 {
			// Stable fallback so equal keys keep a deterministic order
			cmp = strings.Compare(a.BaseSKU, b.BaseSKU)
			return cmp < 0
		}
		if descending {
			return cmp > 0
		}
		return cmp < 0
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return less(groups[i], groups[j])
	})
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// paginate slices the filtered, sorted set. Out-of-range pages yield an
// empty slice, not an error.
func paginate(groups []catalog.ProductGroup, page, limit int) []catalog.ProductGroup {
	offset := (page - 1) * limit
	if offset >= len(groups) {
		return nil
	}
	end := offset + limit
	if end > len(groups) {
		end = len(groups)
	}
	return groups[offset:end]
}

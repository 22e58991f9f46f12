package persistence

import (
	"context"

	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormVariantRepository implements catalog.VariantRepository over the
// products table
type GormVariantRepository struct {
	db *gorm.DB
}

// NewGormVariantRepository creates a new GormVariantRepository
func NewGormVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

// FindForListing loads variant rows for one catalog query, applying the
// server-side feed filters and the headroom row cap
func (r *GormVariantRepository) FindForListing(ctx context.Context, filter catalog.FeedFilter) ([]catalog.VariantRecord, error) {
	query := r.db.WithContext(ctx).Model(&catalog.VariantRecord{})

	if filter.Brand != "" {
		query = query.Where("LOWER(brand) = LOWER(?)", filter.Brand)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(sku) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.MaxRows > 0 {
		query = query.Limit(filter.MaxRows)
	}

	var variants []catalog.VariantRecord
	if err := query.Order("sku ASC").Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// FindByBaseSKU loads every variant row whose SKU belongs to the given
// product family
func (r *GormVariantRepository) FindByBaseSKU(ctx context.Context, baseSKU string) ([]catalog.VariantRecord, error) {
	canonical := catalog.CanonicalSKU(baseSKU)

	var variants []catalog.VariantRecord
	if err := r.db.WithContext(ctx).
		Where("sku LIKE ? OR sku LIKE ? OR sku = ?", canonical+"-%", canonical+"/%", canonical).
		Order("sku ASC").
		Find(&variants).Error; err != nil {
		return nil, err
	}

	// The LIKE prefix match can overreach ("AB12-N" matches base "AB12"
	// but so would "AB12-X-Y" for base "AB12-X"); re-check precisely.
	matched := variants[:0]
	for _, v := range variants {
		if v.BaseSKU() == canonical || catalog.CanonicalSKU(v.SKU) == canonical {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

// DistinctBrands returns the distinct non-empty brand names in the feed
func (r *GormVariantRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	var brands []string
	if err := r.db.WithContext(ctx).
		Model(&catalog.VariantRecord{}).
		Where("brand != ''").
		Distinct("brand").
		Order("brand ASC").
		Pluck("brand", &brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Ensure GormVariantRepository implements VariantRepository
var _ catalog.VariantRepository = (*GormVariantRepository)(nil)

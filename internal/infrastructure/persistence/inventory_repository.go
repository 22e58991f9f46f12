package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/inventory"
)

// GormInventoryRepository implements inventory.InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

var _ inventory.InventoryRepository = (*GormInventoryRepository)(nil)

func (r *GormInventoryRepository) FindAll(ctx context.Context) ([]inventory.InventoryRecord, error) {
	var records []inventory.InventoryRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load inventory records: %w", err)
	}
	return records, nil
}

func (r *GormInventoryRepository) FindBySKUs(ctx context.Context, skus []string) ([]inventory.InventoryRecord, error) {
	if len(skus) == 0 {
		return nil, nil
	}
	var records []inventory.InventoryRecord
	if err := r.db.WithContext(ctx).Where("sku IN ?", skus).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load inventory records by sku: %w", err)
	}
	return records, nil
}

package inventory

import (
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/catalog"
)

// StockStatus classifies a stock total for UI-facing lookups
type StockStatus string

const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
)

// lowStockCeiling is the largest total still presented as "low stock"
const lowStockCeiling = 5

// ClassifyStock maps a stock total onto the fixed status thresholds
func ClassifyStock(total int) StockStatus {
	switch {
	case total <= 0:
		return StatusOutOfStock
	case total <= lowStockCeiling:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// MergedStock is the per-variant stock figure produced by the merger
type MergedStock struct {
	Total      int            `json:"total"`
	ByLocation map[string]int `json:"by_location"`
}

// StockIndex joins inventory rows onto variant SKUs. Every row is indexed
// under both separator spellings of its SKU and lookups probe both spellings
// of the query, so a separator mismatch between the variant feed and the
// inventory export never produces a false "zero stock".
type StockIndex struct {
	bySKU map[string]MergedStock
}

// NewStockIndex builds an index over the given inventory rows. Malformed
// rows are dropped. A nil or empty row set yields an index that reports zero
// stock everywhere, which is the fail-open behavior used when the inventory
// feed is unavailable.
func NewStockIndex(records []InventoryRecord) *StockIndex {
	index := &StockIndex{bySKU: make(map[string]MergedStock, len(records)*2)}
	for _, record := range records {
		if !record.IsWellFormed() {
			continue
		}
		merged := MergedStock{
			Total:      record.Total(),
			ByLocation: record.ByLocation(),
		}
		for _, form := range catalog.NormalizedForms(record.SKU) {
			index.bySKU[form] = merged
		}
	}
	return index
}

// Lookup returns the merged stock for a SKU in either separator spelling.
// A missing SKU yields zero stock, never an error.
func (ix *StockIndex) Lookup(sku string) MergedStock {
	for _, form := range catalog.NormalizedForms(sku) {
		if merged, ok := ix.bySKU[form]; ok {
			return merged
		}
	}
	return MergedStock{ByLocation: map[string]int{}}
}

// TotalFor returns the merged stock total for a SKU
func (ix *StockIndex) TotalFor(sku string) int {
	return ix.Lookup(sku).Total
}

// Len returns the number of indexed spellings, used for logging
func (ix *StockIndex) Len() int {
	return len(ix.bySKU)
}

// StockSnapshot is the cached classification of a single SKU's stock
type StockSnapshot struct {
	SKU        string         `json:"sku"`
	Total      int            `json:"total"`
	ByLocation map[string]int `json:"by_location"`
	Available  bool           `json:"available"`
	Status     StockStatus    `json:"status"`
}

// NewStockSnapshot classifies merged stock for a SKU
func NewStockSnapshot(sku string, merged MergedStock) StockSnapshot {
	return StockSnapshot{
		SKU:        catalog.CanonicalSKU(sku),
		Total:      merged.Total,
		ByLocation: merged.ByLocation,
		Available:  merged.Total > 0,
		Status:     ClassifyStock(merged.Total),
	}
}

package inventory

// Stock locations known to the storefront. The inventory export carries one
// column per location plus a precomputed total.
const (
	LocationStore  = "chodov"
	LocationOutlet = "outlet"
)

// InventoryRecord is one row of the inventory feed: per-location stock for a
// single SKU. Loaded in full for the scope of a catalog query.
type InventoryRecord struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	SKU         string `gorm:"column:sku;type:varchar(64);not null;uniqueIndex" json:"sku"`
	StockStore  int    `gorm:"column:stock_chodov;not null;default:0" json:"stock_chodov"`
	StockOutlet int    `gorm:"column:stock_outlet;not null;default:0" json:"stock_outlet"`
	TotalStock  int    `gorm:"column:total_stock;not null;default:0" json:"total_stock"`
}

// TableName returns the table name for GORM
func (InventoryRecord) TableName() string {
	return "inventories"
}

// ByLocation returns the per-location stock breakdown
func (r InventoryRecord) ByLocation() map[string]int {
	return map[string]int{
		LocationStore:  r.StockStore,
		LocationOutlet: r.StockOutlet,
	}
}

// Total returns the record's total stock, preferring the stored total and
// falling back to the per-location sum when the export left it empty.
func (r InventoryRecord) Total() int {
	if r.TotalStock > 0 {
		return r.TotalStock
	}
	return r.StockStore + r.StockOutlet
}

// IsWellFormed reports whether the row can participate in merging. Rows with
// a missing SKU or negative stock are skipped rather than failing the query.
func (r InventoryRecord) IsWellFormed() bool {
	return r.SKU != "" && r.StockStore >= 0 && r.StockOutlet >= 0 && r.TotalStock >= 0
}

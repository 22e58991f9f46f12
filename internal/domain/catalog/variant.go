package catalog

// VariantRecord is one row of the variant feed: a single sellable
// color/finish of a product. Records are read fresh per request and are
// immutable once loaded.
type VariantRecord struct {
	ID             int64    `gorm:"primaryKey" json:"id"`
	SKU            string   `gorm:"column:sku;type:varchar(64);not null;uniqueIndex" json:"sku"`
	Name           string   `gorm:"type:varchar(255);not null" json:"name"`
	Price          int      `gorm:"not null;default:0" json:"price"`
	Brand          string   `gorm:"type:varchar(128);index" json:"brand"`
	CollectionCode string   `gorm:"column:collection_code;type:varchar(64)" json:"collection_code"`
	ImageURL       string   `gorm:"column:image_url;type:text" json:"image_url"`
	Images         []string `gorm:"serializer:json" json:"images"`
	Description    string   `gorm:"type:text" json:"description"`
}

// TableName returns the table name for GORM
func (VariantRecord) TableName() string {
	return "products"
}

// BaseSKU returns the product-family portion of the variant's SKU
func (v VariantRecord) BaseSKU() string {
	return ExtractBaseSKU(v.SKU)
}

// VariantCode returns the color/finish portion of the variant's SKU
func (v VariantRecord) VariantCode() string {
	return ExtractVariantCode(v.SKU)
}

// Color resolves the variant's display color from its variant code
func (v VariantRecord) Color() ColorInfo {
	return GetColorInfo(v.VariantCode())
}

// IsWellFormed reports whether the record can participate in grouping.
// Rows with a missing SKU or name are skipped rather than aborting the
// whole aggregation.
func (v VariantRecord) IsWellFormed() bool {
	return v.SKU != "" && v.Name != "" && v.Price >= 0
}

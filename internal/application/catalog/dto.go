package catalog

import (
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/catalog"
)

// ListingFilters are the caller-supplied, conjunctive catalog filters
type ListingFilters struct {
	Category    string
	Brand       string
	PriceMin    *int
	PriceMax    *int
	Search      string
	InStockOnly bool
}

// ListingQuery describes one catalog listing request
type ListingQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Filters   ListingFilters
}

// Sortable listing fields
const (
	SortByStock = "stock"
	SortByName  = "name"
	SortByPrice = "price"
	SortByID    = "id"
)

// ColorVariantResponse is one selectable color in a product group
type ColorVariantResponse struct {
	ColorCode string `json:"color_code"`
	ColorName string `json:"color_name"`
	HexColor  string `json:"hex_color"`
	SKU       string `json:"sku"`
}

// ProductGroupResponse is one deduplicated catalog entry
type ProductGroupResponse struct {
	ID              int64                  `json:"id"`
	BaseSKU         string                 `json:"base_sku"`
	SKU             string                 `json:"sku"`
	Name            string                 `json:"name"`
	Price           int                    `json:"price"`
	Brand           string                 `json:"brand"`
	CollectionCode  string                 `json:"collection_code,omitempty"`
	Description     string                 `json:"description,omitempty"`
	ImageURL        string                 `json:"image_url"`
	Images          []string               `json:"images"`
	AggregatedStock int                    `json:"aggregated_stock"`
	Available       bool                   `json:"available"`
	ColorVariants   []ColorVariantResponse `json:"color_variants"`
	MemberSKUs      []string               `json:"member_skus"`
}

// PaginationResponse describes the page window of a listing result
type PaginationResponse struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// ListingResult is the full response of one catalog listing query
type ListingResult struct {
	Items      []ProductGroupResponse `json:"items"`
	Pagination PaginationResponse     `json:"pagination"`
}

// ImageResolver turns a stored image path into a display URL, producing a
// placeholder for missing paths. Consumed as a black box.
type ImageResolver interface {
	Resolve(storedPath string) string
}

func toGroupResponse(group catalog.ProductGroup, images ImageResolver) ProductGroupResponse {
	resolved := make([]string, 0, len(group.Canonical.Images))
	for _, path := range group.Canonical.Images {
		resolved = append(resolved, images.Resolve(path))
	}

	variants := make([]ColorVariantResponse, 0, len(group.ColorVariants))
	for _, cv := range group.ColorVariants {
		variants = append(variants, ColorVariantResponse(cv))
	}

	return ProductGroupResponse{
		ID:              group.Canonical.ID,
		BaseSKU:         group.BaseSKU,
		SKU:             group.Canonical.SKU,
		Name:            group.DisplayName,
		Price:           group.Canonical.Price,
		Brand:           group.Canonical.Brand,
		CollectionCode:  group.Canonical.CollectionCode,
		Description:     group.Canonical.Description,
		ImageURL:        images.Resolve(group.Canonical.ImageURL),
		Images:          resolved,
		AggregatedStock: group.AggregatedStock,
		Available:       group.Available,
		ColorVariants:   variants,
		MemberSKUs:      group.MemberSKUs,
	}
}

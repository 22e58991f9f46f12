package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcatalog "github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/application/catalog"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/interfaces/http/dto"
)

// CatalogHandler serves the aggregated product catalog
type CatalogHandler struct {
	BaseHandler
	listing *appcatalog.ListingService
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(listing *appcatalog.ListingService, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{
		listing: listing,
		logger:  logger,
	}
}

// ListProducts returns one page of deduplicated product groups with
// filtering and sorting applied.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var req dto.ListingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid listing parameters: "+err.Error())
		return
	}

	query := appcatalog.ListingQuery{
		Page:      req.Page,
		Limit:     req.Limit,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Filters: appcatalog.ListingFilters{
			Category:    req.Category,
			Brand:       req.Brand,
			PriceMin:    req.PriceMin,
			PriceMax:    req.PriceMax,
			Search:      req.Search,
			InStockOnly: req.InStock,
		},
	}

	result, err := h.listing.List(c.Request.Context(), query)
	if err != nil {
		h.logger.Warn("catalog listing failed",
			zap.String("request_id", getRequestID(c)),
			zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetProduct returns the aggregated product group a SKU belongs to. Any
// member SKU of the family resolves to the same group.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	var req dto.SKURequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeInvalidSKU), dto.ErrCodeInvalidSKU, "Invalid SKU")
		return
	}

	group, err := h.listing.Get(c.Request.Context(), req.SKU)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, group)
}

// ListBrands returns the distinct brand names present in the feed
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.listing.Brands(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"brands": brands})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/products", h.ListProducts)
		catalog.GET("/products/:sku", h.GetProduct)
		catalog.GET("/brands", h.ListBrands)
	}
}

package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appinventory "github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/application/inventory"
	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/interfaces/http/dto"
)

// StockHandler serves per-SKU stock lookups
type StockHandler struct {
	BaseHandler
	stock  *appinventory.StockService
	logger *zap.Logger
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stock *appinventory.StockService, logger *zap.Logger) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{
		stock:  stock,
		logger: logger,
	}
}

// GetStock returns the cached stock snapshot for one SKU. Unknown SKUs
// report zero stock rather than 404; the storefront renders them as sold
// out.
func (h *StockHandler) GetStock(c *gin.Context) {
	var req dto.SKURequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeInvalidSKU), dto.ErrCodeInvalidSKU, "Invalid SKU")
		return
	}

	snapshot, err := h.stock.Lookup(c.Request.Context(), req.SKU)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, snapshot)
}

// RefreshStock drops the cached snapshot for one SKU and recomputes it
func (h *StockHandler) RefreshStock(c *gin.Context) {
	var req dto.SKURequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeInvalidSKU), dto.ErrCodeInvalidSKU, "Invalid SKU")
		return
	}

	snapshot, err := h.stock.Refresh(c.Request.Context(), req.SKU)
	if err != nil {
		h.logger.Warn("stock refresh failed",
			zap.String("sku", req.SKU),
			zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, snapshot)
}

// RegisterRoutes registers all stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/products/:sku/stock", h.GetStock)
		catalog.POST("/products/:sku/stock/refresh", h.RefreshStock)
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/dto"
	"github.com/SscSPs/pos_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles the product catalogue and stock movements.
type productHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newProductHandler(is portssvc.InventorySvcFacade) *productHandler {
	return &productHandler{inventoryService: is}
}

// RegisterProductRoutes registers routes related to products, stock and tax rates.
func RegisterProductRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newProductHandler(inventoryService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/low-stock", h.listLowStock)
		products.GET("/barcode/:barcode", h.getByBarcode)
		products.GET("/:productID", h.getProduct)
		products.POST("/:productID/adjust", h.adjustStock)
		products.GET("/:productID/logs", h.listInventoryLogs)
	}
	rg.GET("/tax-rates", h.listTaxRates)
}

// createProduct godoc
// @Summary Create a product
// @Description Registers a product. Opening stock is recorded as a purchase.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Tax rate not found"
// @Failure 409 {object} map[string]string "SKU or barcode already in use"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	product, err := h.inventoryService.CreateProduct(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Description Lists active products. A search of 8 to 13 digits is tried as a barcode first.
// @Tags products
// @Produce json
// @Param q query string false "Name, SKU, category or barcode"
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query params for ListProducts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	products, err := h.inventoryService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// listLowStock godoc
// @Summary List products running low
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products/low-stock [get]
func (h *productHandler) listLowStock(c *gin.Context) {
	products, err := h.inventoryService.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list low stock products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// getByBarcode godoc
// @Summary Look up a product by barcode
// @Tags products
// @Produce json
// @Param barcode path string true "EAN/UPC barcode"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Not a barcode"
// @Failure 404 {object} map[string]string "No active product with this barcode"
// @Security BearerAuth
// @Router /products/barcode/{barcode} [get]
func (h *productHandler) getByBarcode(c *gin.Context) {
	product, err := h.inventoryService.FindByBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		respondError(c, err, "Failed to look up barcode")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// getProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	product, err := h.inventoryService.GetProduct(c.Request.Context(), c.Param("productID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// adjustStock godoc
// @Summary Adjust stock
// @Description Applies a manual stock movement (purchase, adjustment or damage) and logs it
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param adjustment body dto.AdjustStockRequest true "Signed quantity and reason"
// @Success 201 {object} domain.InventoryLog
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{productID}/adjust [post]
func (h *productHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	log, err := h.inventoryService.AdjustStock(c.Request.Context(), c.Param("productID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to adjust stock")
		return
	}
	c.JSON(http.StatusCreated, log)
}

// listInventoryLogs godoc
// @Summary List stock movements of a product
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Param limit query int false "Limit number of results" default(50)
// @Success 200 {array} domain.InventoryLog
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{productID}/logs [get]
func (h *productHandler) listInventoryLogs(c *gin.Context) {
	var params dto.ListInventoryLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logs, err := h.inventoryService.ListInventoryLogs(c.Request.Context(), c.Param("productID"), params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list inventory logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// listTaxRates godoc
// @Summary List GST slabs
// @Tags products
// @Produce json
// @Success 200 {array} domain.TaxRate
// @Security BearerAuth
// @Router /tax-rates [get]
func (h *productHandler) listTaxRates(c *gin.Context) {
	rates, err := h.inventoryService.ListTaxRates(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list tax rates")
		return
	}
	c.JSON(http.StatusOK, rates)
}

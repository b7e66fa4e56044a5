package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/dto"
	"github.com/SscSPs/pos_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cartHandler handles the billing screen: building a cart and checking it out.
type cartHandler struct {
	cartService portssvc.CartSessionSvc
}

func newCartHandler(cs portssvc.CartSessionSvc) *cartHandler {
	return &cartHandler{cartService: cs}
}

// RegisterCartRoutes registers routes related to cart sessions.
func RegisterCartRoutes(rg *gin.RouterGroup, cartService portssvc.CartSessionSvc) {
	h := newCartHandler(cartService)

	carts := rg.Group("/carts")
	{
		carts.POST("", h.openCart)
		carts.GET("/:cartID", h.getCart)
		carts.DELETE("/:cartID", h.discardCart)
		carts.POST("/:cartID/items", h.addItem)
		carts.DELETE("/:cartID/items", h.clearCart)
		carts.PUT("/:cartID/items/:productID", h.updateQty)
		carts.DELETE("/:cartID/items/:productID", h.removeItem)
		carts.PUT("/:cartID/discount", h.setBillDiscount)
		carts.POST("/:cartID/checkout", h.checkout)
	}
}

// openCart godoc
// @Summary Open a cart
// @Description Starts a new sale session with an empty cart
// @Tags carts
// @Produce json
// @Success 201 {object} dto.CartResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /carts [post]
func (h *cartHandler) openCart(c *gin.Context) {
	cartID, err := h.cartService.OpenCart(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to open cart")
		return
	}
	totals, err := h.cartService.Totals(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, err, "Failed to open cart")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Cart opened", slog.String("cart_id", cartID))
	c.JSON(http.StatusCreated, dto.ToCartResponse(cartID, totals))
}

// getCart godoc
// @Summary Get cart totals
// @Tags carts
// @Produce json
// @Param cartID path string true "Cart ID"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} map[string]string "Cart not found"
// @Security BearerAuth
// @Router /carts/{cartID} [get]
func (h *cartHandler) getCart(c *gin.Context) {
	cartID := c.Param("cartID")
	totals, err := h.cartService.Totals(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, err, "Failed to price cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cartID, totals))
}

// addItem godoc
// @Summary Add an item to the cart
// @Description Adds a product by ID or barcode. Adding a product already in the cart increases its quantity.
// @Tags carts
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param item body dto.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Cart or product not found"
// @Security BearerAuth
// @Router /carts/{cartID}/items [post]
func (h *cartHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cartID := c.Param("cartID")

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddCartItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var (
		totals *domain.CartTotals
		err    error
	)
	if req.ProductID != "" {
		totals, err = h.cartService.AddProduct(c.Request.Context(), cartID, req.ProductID, req.Qty)
	} else {
		totals, err = h.cartService.AddByBarcode(c.Request.Context(), cartID, req.Barcode, req.Qty)
	}
	if err != nil {
		respondError(c, err, "Failed to add item to cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cartID, totals))
}

// updateQty godoc
// @Summary Change a line's quantity
// @Description Overwrites the quantity of a cart line. Zero or less removes the line.
// @Tags carts
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param productID path string true "Product ID"
// @Param qty body dto.UpdateCartQtyRequest true "New quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Cart or line not found"
// @Security BearerAuth
// @Router /carts/{cartID}/items/{productID} [put]
func (h *cartHandler) updateQty(c *gin.Context) {
	cartID := c.Param("cartID")

	var req dto.UpdateCartQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for UpdateCartQty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	totals, err := h.cartService.UpdateQty(c.Request.Context(), cartID, c.Param("productID"), *req.Qty)
	if err != nil {
		respondError(c, err, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cartID, totals))
}

// removeItem godoc
// @Summary Remove a line from the cart
// @Tags carts
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} map[string]string "Cart or line not found"
// @Security BearerAuth
// @Router /carts/{cartID}/items/{productID} [delete]
func (h *cartHandler) removeItem(c *gin.Context) {
	cartID := c.Param("cartID")
	totals, err := h.cartService.RemoveItem(c.Request.Context(), cartID, c.Param("productID"))
	if err != nil {
		respondError(c, err, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cartID, totals))
}

// clearCart godoc
// @Summary Empty the cart
// @Description Removes every line and resets the bill discount. The session stays open.
// @Tags carts
// @Param cartID path string true "Cart ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Cart not found"
// @Security BearerAuth
// @Router /carts/{cartID}/items [delete]
func (h *cartHandler) clearCart(c *gin.Context) {
	if err := h.cartService.ClearCart(c.Request.Context(), c.Param("cartID")); err != nil {
		respondError(c, err, "Failed to clear cart")
		return
	}
	c.Status(http.StatusNoContent)
}

// discardCart godoc
// @Summary Discard the cart
// @Description Ends the sale session without creating an invoice
// @Tags carts
// @Param cartID path string true "Cart ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Cart not found"
// @Security BearerAuth
// @Router /carts/{cartID} [delete]
func (h *cartHandler) discardCart(c *gin.Context) {
	if err := h.cartService.DiscardCart(c.Request.Context(), c.Param("cartID")); err != nil {
		respondError(c, err, "Failed to discard cart")
		return
	}
	c.Status(http.StatusNoContent)
}

// setBillDiscount godoc
// @Summary Set the bill discount
// @Description Sets a percentage that is added to every line's own discount
// @Tags carts
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param discount body dto.SetBillDiscountRequest true "Discount percentage"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Cart not found"
// @Security BearerAuth
// @Router /carts/{cartID}/discount [put]
func (h *cartHandler) setBillDiscount(c *gin.Context) {
	cartID := c.Param("cartID")

	var req dto.SetBillDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for SetBillDiscount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	totals, err := h.cartService.SetBillDiscount(c.Request.Context(), cartID, *req.DiscountPct)
	if err != nil {
		respondError(c, err, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cartID, totals))
}

// checkout godoc
// @Summary Check out the cart
// @Description Commits the cart as an invoice: stock is decremented and, for credit sales, the customer's dues increase. The cart is emptied on success.
// @Tags carts
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param payment body dto.CheckoutRequest true "Payment details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input, empty cart or credit sale without customer"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cart, customer or product not found"
// @Failure 500 {object} map[string]string "Failed to commit invoice"
// @Security BearerAuth
// @Router /carts/{cartID}/checkout [post]
func (h *cartHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cartID := c.Param("cartID")

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Checkout", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.cartService.Checkout(c.Request.Context(), cartID, portssvc.CheckoutInput{
		CustomerID:     req.CustomerID,
		UserID:         userID,
		PaymentMode:    req.PaymentMode,
		AmountReceived: req.AmountReceived,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(c, err, "Failed to commit invoice")
		return
	}

	logger.Info("Cart checked out", slog.String("cart_id", cartID), slog.String("invoice_number", invoice.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

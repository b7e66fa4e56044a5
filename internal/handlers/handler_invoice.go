package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type invoiceHandler struct {
	billingService portssvc.BillingSvcFacade
}

func newInvoiceHandler(bs portssvc.BillingSvcFacade) *invoiceHandler {
	return &invoiceHandler{billingService: bs}
}

// RegisterInvoiceRoutes registers routes related to invoices.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newInvoiceHandler(billingService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("/:invoiceID", h.getInvoice)
	}
}

// getInvoice godoc
// @Summary Get an invoice
// @Description Retrieves an invoice with its items, ready to print as a receipt
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Security BearerAuth
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	invoice, err := h.billingService.GetInvoice(c.Request.Context(), c.Param("invoiceID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

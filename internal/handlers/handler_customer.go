package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/dto"
	"github.com/SscSPs/pos_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles customers and their credit dues.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	billingService  portssvc.InvoiceReaderSvc
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade, bs portssvc.InvoiceReaderSvc) *customerHandler {
	return &customerHandler{customerService: cs, billingService: bs}
}

// RegisterCustomerRoutes registers routes related to customers and dues.
func RegisterCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, billingService portssvc.InvoiceReaderSvc) {
	h := newCustomerHandler(customerService, billingService)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:customerID", h.getCustomer)
		customers.GET("/:customerID/invoices", h.listInvoices)
		customers.GET("/:customerID/dues", h.getDues)
		customers.POST("/:customerID/dues/settle", h.settleDues)
		customers.GET("/:customerID/dues/payments", h.listDuesPayments)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Phone number already registered"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// listCustomers godoc
// @Summary Search customers
// @Tags customers
// @Produce json
// @Param q query string false "Name or phone fragment"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} domain.Customer
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query params for ListCustomers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{customerID} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// listInvoices godoc
// @Summary List a customer's invoices
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param limit query int false "Limit number of results" default(20)
// @Success 200 {array} domain.InvoiceSummary
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{customerID}/invoices [get]
func (h *customerHandler) listInvoices(c *gin.Context) {
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, err := h.billingService.ListCustomerInvoices(c.Request.Context(), c.Param("customerID"), params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// getDues godoc
// @Summary Get a customer's outstanding dues
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} dto.DuesResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{customerID}/dues [get]
func (h *customerHandler) getDues(c *gin.Context) {
	customerID := c.Param("customerID")
	outstanding, err := h.customerService.GetCustomerDues(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err, "Failed to retrieve dues")
		return
	}
	c.JSON(http.StatusOK, dto.DuesResponse{CustomerID: customerID, Outstanding: outstanding})
}

// settleDues godoc
// @Summary Settle a customer's dues
// @Description Records a payment that reduces the outstanding balance. The amount may not exceed the balance.
// @Tags customers
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param payment body dto.SettleDuesRequest true "Amount paid"
// @Success 201 {object} domain.DuesPayment
// @Failure 400 {object} map[string]string "Amount not positive or above the balance"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 409 {object} map[string]string "No dues outstanding"
// @Security BearerAuth
// @Router /customers/{customerID}/dues/settle [post]
func (h *customerHandler) settleDues(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	var req dto.SettleDuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SettleDues", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payment, err := h.customerService.SettleDues(c.Request.Context(), customerID, req.Amount, userID)
	if err != nil {
		respondError(c, err, "Failed to settle dues")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// listDuesPayments godoc
// @Summary List a customer's dues payments
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param limit query int false "Limit number of results" default(20)
// @Success 200 {array} domain.DuesPayment
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{customerID}/dues/payments [get]
func (h *customerHandler) listDuesPayments(c *gin.Context) {
	var params dto.ListDuesPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	payments, err := h.customerService.ListDuesPayments(c.Request.Context(), c.Param("customerID"), params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list dues payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/dto"
	"github.com/SscSPs/pos_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to sales reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	loc              *time.Location
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, loc *time.Location) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		loc:              loc,
	}
}

// RegisterReportingRoutes registers routes related to sales reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, loc *time.Location) {
	h := newReportingHandler(reportingService, loc)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/product-sales", h.getProductSales)
		reportingGroup.GET("/gst-summary", h.getGSTSummary)
		reportingGroup.GET("/dashboard", h.getDashboard)
	}
}

// bindRange reads and parses the from/to query parameters.
func (h *reportingHandler) bindRange(c *gin.Context) (dto.DateRangeParams, time.Time, time.Time, bool) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid report date range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return params, time.Time{}, time.Time{}, false
	}
	from, ok := parseDate(c, params.From, h.loc)
	if !ok {
		return params, time.Time{}, time.Time{}, false
	}
	to, ok := parseDate(c, params.To, h.loc)
	if !ok {
		return params, time.Time{}, time.Time{}, false
	}
	return params, from, to, true
}

// getProductSales godoc
// @Summary Generate product sales report
// @Description Quantity sold and revenue per product between two dates (inclusive), best sellers first
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ProductSalesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/product-sales [get]
func (h *reportingHandler) getProductSales(c *gin.Context) {
	params, from, to, ok := h.bindRange(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.ProductSales(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to generate product sales report")
		return
	}

	c.JSON(http.StatusOK, dto.ProductSalesResponse{
		FromDate: params.From,
		ToDate:   params.To,
		Rows:     rows,
	})
}

// getGSTSummary godoc
// @Summary Generate GST summary report
// @Description Taxable value, CGST and SGST per GST rate between two dates (inclusive)
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.GSTSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/gst-summary [get]
func (h *reportingHandler) getGSTSummary(c *gin.Context) {
	params, from, to, ok := h.bindRange(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.GSTSummary(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to generate GST summary report")
		return
	}

	c.JSON(http.StatusOK, dto.GSTSummaryResponse{
		FromDate: params.From,
		ToDate:   params.To,
		Rows:     rows,
	})
}

// getDashboard godoc
// @Summary Shop dashboard
// @Description Today's sales, bill count, best sellers and latest invoices with the low stock count and total outstanding dues
// @Tags reports
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load dashboard"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	dash, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dash)
}

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

// dayCloseHandler handles end-of-day reconciliation.
type dayCloseHandler struct {
	dayCloseService portssvc.DayCloseSvc
	loc             *time.Location
}

func newDayCloseHandler(ds portssvc.DayCloseSvc, loc *time.Location) *dayCloseHandler {
	return &dayCloseHandler{dayCloseService: ds, loc: loc}
}

// RegisterDayCloseRoutes registers the day-close routes. Dates in the path are
// calendar dates in loc.
func RegisterDayCloseRoutes(rg *gin.RouterGroup, dayCloseService portssvc.DayCloseSvc, loc *time.Location) {
	h := newDayCloseHandler(dayCloseService, loc)

	dayClose := rg.Group("/day-close")
	{
		dayClose.GET("/:date", h.summarizeDay)
		dayClose.POST("/:date", h.closeDay)
	}
}

// summarizeDay godoc
// @Summary Summarize a business day
// @Description Totals per payment mode, invoice count, average bill and GST for the date. Read-only.
// @Tags day-close
// @Produce json
// @Param date path string true "Business date (YYYY-MM-DD)"
// @Success 200 {object} dto.DaySummaryResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to summarize day"
// @Security BearerAuth
// @Router /day-close/{date} [get]
func (h *dayCloseHandler) summarizeDay(c *gin.Context) {
	date, ok := parseDate(c, c.Param("date"), h.loc)
	if !ok {
		return
	}

	summary, err := h.dayCloseService.SummarizeDay(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "Failed to summarize day")
		return
	}
	c.JSON(http.StatusOK, dto.ToDaySummaryResponse(summary))
}

// closeDay godoc
// @Summary Close a business day
// @Description Flags every invoice of the date as closed and stores the day's totals. A date can be closed once.
// @Tags day-close
// @Produce json
// @Param date path string true "Business date (YYYY-MM-DD)"
// @Success 201 {object} domain.DayCloseLog
// @Failure 400 {object} map[string]string "Invalid or future date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Day already closed"
// @Failure 500 {object} map[string]string "Failed to close day"
// @Security BearerAuth
// @Router /day-close/{date} [post]
func (h *dayCloseHandler) closeDay(c *gin.Context) {
	date, ok := parseDate(c, c.Param("date"), h.loc)
	if !ok {
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	closeLog, err := h.dayCloseService.CloseDay(c.Request.Context(), date, userID)
	if err != nil {
		respondError(c, err, "Failed to close day")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Day closed", slog.String("date", c.Param("date")), slog.Int("invoice_count", closeLog.InvoiceCount))
	c.JSON(http.StatusCreated, closeLog)
}

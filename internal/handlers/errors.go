package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes the HTTP status that matches err. Sentinel errors keep
// their message; anything else is logged and replaced with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrAlreadySatisfied):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		status := http.StatusInternalServerError
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 600 {
			status = appErr.Code
		}
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
	}
}

// requireUserID reads the authenticated user or answers 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// parseDate reads a YYYY-MM-DD calendar date in the shop's time zone.
func parseDate(c *gin.Context, raw string, loc *time.Location) (time.Time, bool) {
	date, err := time.ParseInLocation(domain.DateLayout, raw, loc)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid date", slog.String("date", raw), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// bindCashier records the authenticated cashier on both the gin context and the
// request context, and swaps in a logger tagged with them.
func bindCashier(c *gin.Context, cashierID string, logger *slog.Logger) {
	ctx := context.WithValue(c.Request.Context(), userIDKey, cashierID)
	c.Request = c.Request.WithContext(WithLogger(ctx, logger))
	c.Set(string(userIDKey), cashierID)
}

// GetUserIDFromContext retrieves the authenticated user (cashier) ID.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}

	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

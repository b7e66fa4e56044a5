package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RateLimit limits requests per client IP. Every response carries the
// X-RateLimit-* headers; rejected requests also get Retry-After.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		logger := GetLoggerFromCtx(c.Request.Context())

		quota, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(quota.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(quota.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(quota.Reset, 10))

		if quota.Reached {
			wait := time.Until(time.Unix(quota.Reset, 0))
			if wait < time.Second {
				wait = time.Second
			}
			c.Header("Retry-After", strconv.Itoa(int(wait.Round(time.Second).Seconds())))
			logger.Warn("Rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", quota.Limit), slog.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}

		c.Next()
	}
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func TestRateLimit_RejectsAfterQuota(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 2})

	r := gin.New()
	r.GET("/ping", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.7:5000"
		r.ServeHTTP(last, req)
		if i < 2 {
			assert.Equal(t, http.StatusOK, last.Code)
		}
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
}

func TestRateLimit_SeparateClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 1})

	r := gin.New()
	r.GET("/ping", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, addr := range []string{"10.0.0.1:1000", "10.0.0.2:1000"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, addr)
	}
}

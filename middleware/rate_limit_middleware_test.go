package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"whey/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_BurstThenReject(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{RequestsPerSecond: 1, Burst: 2}}
	middleware := NewRateLimitMiddleware(cfg)

	e := echo.New()
	handler := middleware.Limit()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// Buckets are per client.
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

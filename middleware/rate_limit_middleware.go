package middleware

import (
	"net/http"
	"sync"

	"whey/config"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware applies a per-client token bucket keyed by real IP.
type RateLimitMiddleware struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(cfg.RateLimit.RequestsPerSecond),
		burst:    cfg.RateLimit.Burst,
	}
}

func (m *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.limiterFor(c.RealIP()).Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}

func (m *RateLimitMiddleware) limiterFor(key string) *rate.Limiter {
	m.mu.RLock()
	limiter, ok := m.limiters[key]
	m.mu.RUnlock()
	if ok {
		return limiter
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if limiter, ok := m.limiters[key]; ok {
		return limiter
	}
	limiter = rate.NewLimiter(m.rps, m.burst)
	m.limiters[key] = limiter
	return limiter
}

package rest

import (
	"log/slog"

	"whey/config"
	"whey/di"
	middleware_custom "whey/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config, appLogger *slog.Logger) {
	// 1. Request ID first so every later log line carries it
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery early
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// 4. CORS for the storefront origins
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:4173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Authorization", "X-Requested-With"},
		MaxAge:       86400,
	}))

	// 5. Rate limiting before any handler work
	e.Use(middleware_custom.NewRateLimitMiddleware(cfg).Limit())

	// 6. Tracing and request logging
	e.Use(otelecho.Middleware("whey-backend"))
	e.Use(middleware_custom.OTelStatusMiddleware())
	e.Use(middleware_custom.LoggingMiddleware(appLogger))

	// 7. Viewer resolution: optional everywhere, enforced per route
	auth := middleware_custom.NewAuthMiddleware(appLogger, cfg)
	e.Use(auth.AttachViewer())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", healthHandler())

	v1.GET("/products", listProductsHandler(container))
	v1.GET("/products/discover", discoverProductsHandler(container))
	v1.POST("/products/discover/more", discoverMoreHandler(container))
	v1.GET("/products/:slug", getProductDetailHandler(container))
	v1.POST("/products/:id/favorite", toggleFavoriteHandler(container))
}

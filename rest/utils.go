package rest

import (
	"net/http"
	"net/url"

	"whey/utils/errors"
	"whey/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to appropriate HTTP responses.
func handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()

	if appErr, ok := err.(*errors.AppError); ok {
		logger.SafeErrorContext(ctx, "operation failed",
			"operation", operation,
			"code", appErr.Code,
			"error", appErr.Error(),
			"path", c.Request().URL.Path,
		)
		return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
	}

	switch {
	case errors.IsAuthenticationRequired(err):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	case errors.IsProductNotFound(err):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
	case errors.IsValidationError(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	case errors.IsDatabaseError(err):
		logger.SafeErrorContext(ctx, "operation failed",
			"operation", operation,
			"error", err.Error(),
			"path", c.Request().URL.Path,
		)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "upstream unavailable"})
	case errors.IsFavoriteRejected(err):
		logger.SafeWarnContext(ctx, "favorite toggle rejected",
			"operation", operation,
			"error", err.Error(),
		)
		return c.JSON(http.StatusConflict, map[string]string{"error": "favorite toggle rejected"})
	}

	logger.SafeErrorContext(ctx, "unexpected error",
		"operation", operation,
		"error", err.Error(),
		"path", c.Request().URL.Path,
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// canonicalURL rebuilds the request URL from the cleaned parameter set.
func canonicalURL(path string, cleaned url.Values) string {
	encoded := cleaned.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

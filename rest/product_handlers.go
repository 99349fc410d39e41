package rest

import (
	"net/http"
	"time"

	"whey/di"
	"whey/queryparam"
	"whey/usecase/fetch_products_usecase"
	"whey/utils/errors"
	"whey/utils/logger"
	"whey/utils/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// listProductsHandler serves the full catalog slice for one query tuple.
//
// A request whose parameters fail validation is answered with a redirect to
// the canonical URL instead of a page of results: the address bar stays the
// single source of truth and a reload of the corrected URL parses cleanly.
func listProductsHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		start := time.Now()

		parsed := container.Codec.Parse(c.QueryParams())
		if parsed.HasInvalidParams {
			return redirectToCanonical(c, parsed)
		}

		products, err := container.FetchProductsListUsecase.Execute(ctx, parsed.Filters, parsed.SortBy, parsed.SortOrder)
		if err != nil {
			return handleError(c, err, "list_products")
		}

		metrics.SearchDuration.Observe(time.Since(start).Seconds())
		return c.JSON(http.StatusOK, ProductListResponse{
			Products: products,
			Count:    len(products),
		})
	}
}

// discoverProductsHandler returns the accumulated pages for the requested
// tuple, fetching the first page when the tuple is new.
func discoverProductsHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		parsed := container.Codec.Parse(c.QueryParams())
		if parsed.HasInvalidParams {
			return redirectToCanonical(c, parsed)
		}

		controller := container.ControllerRegistry.For(parsed.Filters, parsed.SortBy, parsed.SortOrder)
		if err := controller.EnsureQuery(ctx, parsed.Filters, parsed.SortBy, parsed.SortOrder); err != nil {
			return handleError(c, err, "discover_products")
		}

		return c.JSON(http.StatusOK, discoverResponse(controller.State()))
	}
}

// discoverMoreHandler appends the next page to the tuple's accumulation. A
// trigger that lands while a fetch is outstanding, or after the final short
// page, is a no-op and simply reports the current state.
func discoverMoreHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		parsed := container.Codec.Parse(c.QueryParams())
		if parsed.HasInvalidParams {
			return redirectToCanonical(c, parsed)
		}

		controller := container.ControllerRegistry.For(parsed.Filters, parsed.SortBy, parsed.SortOrder)
		if err := controller.EnsureQuery(ctx, parsed.Filters, parsed.SortBy, parsed.SortOrder); err != nil {
			return handleError(c, err, "discover_more")
		}
		if err := controller.Advance(ctx); err != nil {
			return handleError(c, err, "discover_more")
		}

		return c.JSON(http.StatusOK, discoverResponse(controller.State()))
	}
}

func getProductDetailHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		slug := c.Param("slug")
		if slug == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "slug is required"})
		}

		detail, err := container.FetchProductDetailUsecase.Execute(ctx, slug)
		if err != nil {
			return handleError(c, err, "get_product_detail")
		}

		return c.JSON(http.StatusOK, detail)
	}
}

// toggleFavoriteHandler flips the viewer's favorite mark for one product.
// The payload carries the favorited status the client currently displays, so
// a double-submit settles on the state the viewer last saw rather than
// flipping twice.
func toggleFavoriteHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		skuID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		}

		var payload FavoriteTogglePayload
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		err = container.ToggleFavoriteUsecase.Execute(ctx, skuID, payload.Favorited)
		if err != nil {
			if errors.IsAuthenticationRequired(err) {
				return c.JSON(http.StatusUnauthorized, AuthRequiredResponse{
					Error:    "authentication required",
					LoginURL: container.Config.Auth.LoginURL,
					ReturnTo: c.Request().Header.Get("Referer"),
				})
			}
			return handleError(c, err, "toggle_favorite")
		}

		return c.JSON(http.StatusOK, FavoriteToggleResponse{Status: "accepted"})
	}
}

func redirectToCanonical(c echo.Context, parsed queryparam.ParseResult) error {
	target := canonicalURL(c.Request().URL.Path, parsed.CleanedParams)
	logger.SafeInfoContext(c.Request().Context(), "redirecting to canonical query",
		"from", c.Request().URL.RequestURI(),
		"to", target,
	)
	return c.Redirect(http.StatusFound, target)
}

func discoverResponse(state fetch_products_usecase.ListState) DiscoverResponse {
	return DiscoverResponse{
		Pages:      state.Pages,
		HasMore:    state.HasMore,
		FetchError: state.FetchError,
	}
}

package fetch_products_usecase

import (
	"context"
	"sync"
	"time"

	"whey/cache"
	"whey/domain"
	"whey/port/product_search_port"
	"whey/queryparam"
	"whey/utils/logger"
	"whey/utils/metrics"
)

// DefaultScrollPageSize is the batch size for infinite-scroll accumulation.
const DefaultScrollPageSize = 24

// ListState is a read-only view of one logical query's accumulation.
type ListState struct {
	Pages      [][]domain.ProductItem `json:"pages"`
	HasMore    bool                   `json:"has_more"`
	FetchError string                 `json:"fetch_error,omitempty"`
}

// ProductListController drives incremental retrieval for one logical query
// tuple (filters + sort + page size). Pages accumulate in the shared cache
// under a key derived from the canonical parameter encoding.
//
// At most one fetch is in flight; duplicate advance triggers while one is
// outstanding are suppressed, not queued. Page n+1 is never requested before
// page n's response has been observed. A Reset bumps the generation token so
// a late response for the old tuple is discarded instead of appended.
type ProductListController struct {
	mu            sync.Mutex
	searchGateway product_search_port.SearchProductsPort
	store         *cache.Store
	codec         *queryparam.Codec
	pageSize      int

	generation uint64
	cacheKey   string
	query      domain.ProductQuery
	pagesDone  int
	hasMore    bool
	inFlight   bool
	started    bool
	lastErr    error
}

func NewProductListController(searchGateway product_search_port.SearchProductsPort, store *cache.Store, codec *queryparam.Codec, pageSize int) *ProductListController {
	if pageSize <= 0 {
		pageSize = DefaultScrollPageSize
	}
	return &ProductListController{
		searchGateway: searchGateway,
		store:         store,
		codec:         codec,
		pageSize:      pageSize,
	}
}

// EnsureQuery makes the controller serve the given tuple. A tuple change (or
// first subscription) invalidates the accumulation, bumps the generation,
// and fetches page 0; calling with the current tuple is a cheap no-op.
func (c *ProductListController) EnsureQuery(ctx context.Context, filters domain.FilterState, sortBy domain.SortBy, sortOrder domain.SortOrder) error {
	key := c.keyFor(filters, sortBy, sortOrder)

	c.mu.Lock()
	if c.started && key == c.cacheKey {
		c.mu.Unlock()
		return nil
	}
	c.resetLocked(key, filters, sortBy, sortOrder)
	c.mu.Unlock()

	return c.Advance(ctx)
}

// Reset unconditionally restarts the query at page 0, discarding any
// in-flight fetch's eventual response.
func (c *ProductListController) Reset(ctx context.Context, filters domain.FilterState, sortBy domain.SortBy, sortOrder domain.SortOrder) error {
	c.mu.Lock()
	c.resetLocked(c.keyFor(filters, sortBy, sortOrder), filters, sortBy, sortOrder)
	c.mu.Unlock()

	return c.Advance(ctx)
}

func (c *ProductListController) resetLocked(key string, filters domain.FilterState, sortBy domain.SortBy, sortOrder domain.SortOrder) {
	c.generation++
	c.started = true
	c.cacheKey = key
	c.query = domain.ProductQuery{
		Filters:   filters,
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Limit:     c.pageSize,
	}
	c.pagesDone = 0
	c.hasMore = true
	c.inFlight = false
	c.lastErr = nil
	c.store.Set(key, &cache.PaginatedEntry{HasMore: true})
}

// Advance requests the next page. It is a no-op while the accumulation is
// terminal or a fetch is already outstanding. A failure leaves accumulated
// pages intact and keeps hasMore set, so re-triggering retries.
func (c *ProductListController) Advance(ctx context.Context) error {
	c.mu.Lock()
	if !c.started || !c.hasMore || c.inFlight {
		c.mu.Unlock()
		return nil
	}
	generation := c.generation
	key := c.cacheKey
	query := c.query
	query.Offset = c.pagesDone * c.pageSize
	c.inFlight = true
	c.mu.Unlock()

	start := time.Now()
	items, err := c.searchGateway.SearchProducts(ctx, query)
	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		// Superseded by a tuple change while the fetch was out.
		metrics.StaleResponsesDropped.Inc()
		logger.SafeInfoContext(ctx, "discarding stale search response", "generation", generation, "current", c.generation)
		return nil
	}
	c.inFlight = false

	if err != nil {
		c.lastErr = err
		metrics.FetchFailures.Inc()
		logger.SafeErrorContext(ctx, "page fetch failed", "error", err, "offset", query.Offset)
		return err
	}

	c.lastErr = nil
	c.pagesDone++
	c.hasMore = len(items) == c.pageSize
	metrics.PagesFetched.Inc()

	hasMore := c.hasMore
	c.store.Patch(key, func(entry cache.Entry) {
		if paginated, ok := entry.(*cache.PaginatedEntry); ok {
			paginated.Pages = append(paginated.Pages, items)
			paginated.HasMore = hasMore
		}
	})

	logger.SafeInfoContext(ctx, "page fetched", "page", c.pagesDone-1, "count", len(items), "has_more", hasMore)
	return nil
}

// State returns a copy of the current accumulation for rendering.
func (c *ProductListController) State() ListState {
	c.mu.Lock()
	key := c.cacheKey
	hasMore := c.hasMore
	lastErr := c.lastErr
	started := c.started
	c.mu.Unlock()

	state := ListState{HasMore: hasMore}
	if !started {
		return state
	}
	if lastErr != nil {
		state.FetchError = lastErr.Error()
	}
	if entry, _ := c.store.Get(key); entry != nil {
		if paginated, ok := entry.Clone().(*cache.PaginatedEntry); ok {
			state.Pages = paginated.Pages
		}
	}
	return state
}

// CacheKey exposes the current tuple's cache key.
func (c *ProductListController) CacheKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cacheKey
}

func (c *ProductListController) keyFor(filters domain.FilterState, sortBy domain.SortBy, sortOrder domain.SortOrder) string {
	return ScrollCacheKey(c.codec, filters, sortBy, sortOrder)
}

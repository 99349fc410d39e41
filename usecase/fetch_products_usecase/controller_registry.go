package fetch_products_usecase

import (
	"sync"

	"whey/cache"
	"whey/domain"
	"whey/port/product_search_port"
	"whey/queryparam"
)

// ControllerRegistry hands out one ProductListController per logical query
// tuple. Distinct tuples never share accumulation state, so a filter change
// lands on a fresh controller starting at page 0 while the old tuple's
// in-flight response, if any, dies with its own generation.
type ControllerRegistry struct {
	mu          sync.Mutex
	controllers map[string]*ProductListController

	searchGateway product_search_port.SearchProductsPort
	store         *cache.Store
	codec         *queryparam.Codec
	pageSize      int
}

func NewControllerRegistry(searchGateway product_search_port.SearchProductsPort, store *cache.Store, codec *queryparam.Codec, pageSize int) *ControllerRegistry {
	return &ControllerRegistry{
		controllers:   make(map[string]*ProductListController),
		searchGateway: searchGateway,
		store:         store,
		codec:         codec,
		pageSize:      pageSize,
	}
}

// For returns the controller owning the given tuple, creating it on first use.
func (r *ControllerRegistry) For(filters domain.FilterState, sortBy domain.SortBy, sortOrder domain.SortOrder) *ProductListController {
	key := ScrollCacheKey(r.codec, filters, sortBy, sortOrder)

	r.mu.Lock()
	defer r.mu.Unlock()
	if controller, ok := r.controllers[key]; ok {
		return controller
	}
	controller := NewProductListController(r.searchGateway, r.store, r.codec, r.pageSize)
	r.controllers[key] = controller
	return controller
}

// DropOrphans forgets controllers whose cache entry was evicted, so the
// registry does not outgrow the cache.
func (r *ControllerRegistry) DropOrphans() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for key, controller := range r.controllers {
		ck := controller.CacheKey()
		if ck == "" {
			continue
		}
		if entry, _ := r.store.Get(ck); entry != nil {
			continue
		}
		delete(r.controllers, key)
		dropped++
	}
	return dropped
}

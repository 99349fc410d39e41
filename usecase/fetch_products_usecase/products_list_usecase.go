package fetch_products_usecase

import (
	"context"
	"errors"

	"whey/cache"
	"whey/domain"
	"whey/port/product_search_port"
	"whey/queryparam"
	"whey/utils/logger"
)

// DefaultFullListPageSize is the batch size for full-list queries.
const DefaultFullListPageSize = 100

// FetchProductsListUsecase serves the flat (non-scrolling) result list,
// caching it under the list namespace so favorite patches reach it.
type FetchProductsListUsecase struct {
	searchGateway product_search_port.SearchProductsPort
	store         *cache.Store
	codec         *queryparam.Codec
	pageSize      int
}

func NewFetchProductsListUsecase(searchGateway product_search_port.SearchProductsPort, store *cache.Store, codec *queryparam.Codec, pageSize int) *FetchProductsListUsecase {
	if pageSize <= 0 {
		pageSize = DefaultFullListPageSize
	}
	return &FetchProductsListUsecase{
		searchGateway: searchGateway,
		store:         store,
		codec:         codec,
		pageSize:      pageSize,
	}
}

func (u *FetchProductsListUsecase) Execute(ctx context.Context, filters domain.FilterState, sortBy domain.SortBy, sortOrder domain.SortOrder) ([]domain.ProductItem, error) {
	if u.searchGateway == nil {
		return nil, errors.New("search gateway not configured")
	}

	key := FullListCacheKey(u.codec, filters, sortBy, sortOrder)
	if entry, fresh := u.store.Get(key); fresh {
		if flat, ok := entry.Clone().(*cache.FlatEntry); ok {
			logger.SafeDebugContext(ctx, "full list served from cache", "key", key)
			return flat.Items, nil
		}
	}

	items, err := u.searchGateway.SearchProducts(ctx, domain.ProductQuery{
		Filters:   filters,
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Limit:     u.pageSize,
	})
	if err != nil {
		logger.SafeErrorContext(ctx, "full list fetch failed", "error", err)
		return nil, err
	}

	u.store.Set(key, &cache.FlatEntry{Items: append([]domain.ProductItem(nil), items...)})
	logger.SafeInfoContext(ctx, "full list fetched", "count", len(items))
	return items, nil
}

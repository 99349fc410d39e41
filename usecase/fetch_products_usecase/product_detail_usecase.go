package fetch_products_usecase

import (
	"context"
	"errors"
	"strings"

	"whey/cache"
	"whey/domain"
	"whey/port/product_search_port"
	"whey/utils/logger"

	"golang.org/x/sync/singleflight"
)

// FetchProductDetailUsecase resolves the product page record, caching it
// under the detail namespace. Concurrent misses for the same slug collapse
// into a single backend call.
type FetchProductDetailUsecase struct {
	detailGateway product_search_port.FetchProductDetailPort
	store         *cache.Store
	group         singleflight.Group
}

func NewFetchProductDetailUsecase(detailGateway product_search_port.FetchProductDetailPort, store *cache.Store) *FetchProductDetailUsecase {
	return &FetchProductDetailUsecase{
		detailGateway: detailGateway,
		store:         store,
	}
}

func (u *FetchProductDetailUsecase) Execute(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errors.New("product slug cannot be empty")
	}

	key := DetailCacheKey(slug)
	if entry, fresh := u.store.Get(key); fresh {
		if detail, ok := entry.Clone().(*cache.DetailEntry); ok && detail.Detail != nil {
			logger.SafeDebugContext(ctx, "detail served from cache", "slug", slug)
			return detail.Detail, nil
		}
	}

	result, err, _ := u.group.Do(slug, func() (interface{}, error) {
		detail, err := u.detailGateway.FetchProductDetail(ctx, slug)
		if err != nil {
			return nil, err
		}
		u.store.Set(key, (&cache.DetailEntry{Detail: detail}).Clone())
		return detail, nil
	})
	if err != nil {
		logger.SafeErrorContext(ctx, "detail fetch failed", "error", err, "slug", slug)
		return nil, err
	}

	return result.(*domain.ProductDetail), nil
}

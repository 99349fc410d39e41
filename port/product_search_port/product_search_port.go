package product_search_port

import (
	"context"

	"whey/domain"
)

// SearchProductsPort is the opaque search collaborator. It returns at most
// query.Limit items ranked per the sort tuple; a shorter result signals
// exhaustion.
type SearchProductsPort interface {
	SearchProducts(ctx context.Context, query domain.ProductQuery) ([]domain.ProductItem, error)
}

// FetchProductDetailPort resolves a single product page record by slug.
type FetchProductDetailPort interface {
	FetchProductDetail(ctx context.Context, slug string) (*domain.ProductDetail, error)
}

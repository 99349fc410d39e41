package product_search_gateway

import (
	"context"
	"errors"

	"whey/domain"
	"whey/driver/storedb"
	apperrors "whey/utils/errors"
	"whey/utils/logger"

	"github.com/jackc/pgx/v5"
)

// ProductSearchGateway adapts the relational search driver to the search
// port, translating driver failures into domain sentinels.
type ProductSearchGateway struct {
	storedb *storedb.StoreDBRepository
}

func NewProductSearchGateway(pool storedb.DB, domains domain.FilterDomains) *ProductSearchGateway {
	return &ProductSearchGateway{storedb: storedb.NewStoreDBRepository(pool, domains)}
}

func (g *ProductSearchGateway) SearchProducts(ctx context.Context, query domain.ProductQuery) ([]domain.ProductItem, error) {
	if g.storedb == nil {
		return nil, apperrors.ErrDatabaseUnavailable
	}

	items, err := g.storedb.SearchProducts(ctx, query)
	if err != nil {
		logger.SafeErrorContext(ctx, "product search failed", "error", err, "limit", query.Limit, "offset", query.Offset)
		return nil, apperrors.ErrDatabaseUnavailable
	}
	return items, nil
}

func (g *ProductSearchGateway) FetchProductDetail(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	if g.storedb == nil {
		return nil, apperrors.ErrDatabaseUnavailable
	}

	detail, err := g.storedb.FetchProductDetail(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProductNotFound
		}
		logger.SafeErrorContext(ctx, "product detail fetch failed", "error", err, "slug", slug)
		return nil, apperrors.ErrDatabaseUnavailable
	}
	return detail, nil
}

package favorite_product_gateway

import (
	"context"
	"errors"

	"whey/domain"
	"whey/driver/storedb"
	apperrors "whey/utils/errors"
	"whey/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FavoriteProductGateway adapts the favorite persistence driver to the
// toggle port.
type FavoriteProductGateway struct {
	storedb *storedb.StoreDBRepository
}

func NewFavoriteProductGateway(pool storedb.DB, domains domain.FilterDomains) *FavoriteProductGateway {
	return &FavoriteProductGateway{storedb: storedb.NewStoreDBRepository(pool, domains)}
}

func (g *FavoriteProductGateway) SubmitFavoriteToggle(ctx context.Context, skuID uuid.UUID, viewerID uuid.UUID, priorFavorited bool) error {
	if g.storedb == nil {
		return apperrors.ErrDatabaseUnavailable
	}

	err := g.storedb.SubmitFavoriteToggle(ctx, skuID, viewerID, priorFavorited)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return apperrors.ErrProductNotFound
		case errors.Is(err, pgx.ErrTxClosed):
			logger.SafeErrorContext(ctx, "favorite toggle transaction failed", "error", err, "sku_id", skuID)
			return apperrors.ErrDatabaseUnavailable
		default:
			logger.SafeErrorContext(ctx, "favorite toggle rejected", "error", err, "sku_id", skuID)
			return apperrors.ErrFavoriteRejected
		}
	}
	logger.SafeInfoContext(ctx, "favorite toggle submitted", "sku_id", skuID, "prior_favorited", priorFavorited)
	return nil
}

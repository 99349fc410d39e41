// Package toggle_favorite_usecase applies a favorite toggle optimistically:
// snapshot, speculative patch across every cached result shape, submit, then
// commit or revert. The three phases are explicit so the protocol stays
// independent of any cache implementation details.
package toggle_favorite_usecase

import (
	"context"

	"whey/cache"
	"whey/domain"
	"whey/port/favorite_product_port"
	apperrors "whey/utils/errors"
	"whey/utils/logger"
	"whey/utils/metrics"

	"github.com/google/uuid"
)

type ToggleFavoriteUsecase struct {
	favoriteGateway favorite_product_port.SubmitFavoriteTogglePort
	store           *cache.Store
}

func NewToggleFavoriteUsecase(favoriteGateway favorite_product_port.SubmitFavoriteTogglePort, store *cache.Store) *ToggleFavoriteUsecase {
	return &ToggleFavoriteUsecase{
		favoriteGateway: favoriteGateway,
		store:           store,
	}
}

// Execute toggles the favorite status of skuID for the authenticated viewer.
//
// The authentication check runs before anything else: an unauthenticated
// attempt must never touch the cache. On backend rejection every patched
// entry is restored from its snapshot exactly; on success the affected
// namespaces are marked stale so the next read picks up authoritative
// counts. An identifier absent from every cached shape still submits — there
// is simply nothing to revert visually.
func (u *ToggleFavoriteUsecase) Execute(ctx context.Context, skuID uuid.UUID, priorFavorited bool) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		logger.SafeInfoContext(ctx, "favorite toggle without session", "sku_id", skuID)
		return apperrors.ErrAuthenticationRequired
	}
	if skuID == uuid.Nil {
		return apperrors.ErrInvalidInput
	}

	snapshot := u.store.SnapshotPrefix(cache.ListNamespace, cache.DetailNamespace)
	u.applyOptimisticPatch(skuID, !priorFavorited)
	metrics.OptimisticPatches.Inc()

	if err := u.favoriteGateway.SubmitFavoriteToggle(ctx, skuID, user.UserID, priorFavorited); err != nil {
		u.store.Restore(snapshot)
		metrics.OptimisticRollbacks.Inc()
		logger.SafeErrorContext(ctx, "favorite toggle rolled back", "error", err, "sku_id", skuID)
		return err
	}

	u.store.MarkStalePrefix(cache.ListNamespace, cache.DetailNamespace)
	logger.SafeInfoContext(ctx, "favorite toggle confirmed", "sku_id", skuID, "favorited", !priorFavorited)
	return nil
}

// applyOptimisticPatch rewrites every cached shape that may contain skuID.
// Dispatch is per concrete shape; entries of other shapes or without the
// item are left untouched.
func (u *ToggleFavoriteUsecase) applyOptimisticPatch(skuID uuid.UUID, nowFavorited bool) {
	u.store.PatchPrefix(func(_ string, entry cache.Entry) {
		switch e := entry.(type) {
		case *cache.PaginatedEntry:
			for _, page := range e.Pages {
				patchItems(page, skuID, nowFavorited)
			}
		case *cache.FlatEntry:
			patchItems(e.Items, skuID, nowFavorited)
		case *cache.DetailEntry:
			if e.Detail != nil && e.Detail.Selected.SkuID == skuID {
				flipItem(&e.Detail.Selected, nowFavorited)
			}
		}
	}, cache.ListNamespace, cache.DetailNamespace)
}

func patchItems(items []domain.ProductItem, skuID uuid.UUID, nowFavorited bool) {
	for i := range items {
		if items[i].SkuID == skuID {
			flipItem(&items[i], nowFavorited)
		}
	}
}

func flipItem(item *domain.ProductItem, nowFavorited bool) {
	if item.Favorited == nowFavorited {
		return
	}
	item.Favorited = nowFavorited
	if nowFavorited {
		item.FavoriteCount++
	} else if item.FavoriteCount > 0 {
		item.FavoriteCount--
	}
}

package storedb

import (
	"context"

	"whey/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SubmitFavoriteToggle persists a favorite toggle. priorFavorited is the
// status the viewer saw before the optimistic patch: true means remove,
// false means add. The aggregate count moves inside the same transaction so
// a later authoritative read reconciles optimistic counts.
func (r *StoreDBRepository) SubmitFavoriteToggle(ctx context.Context, skuID uuid.UUID, viewerID uuid.UUID, priorFavorited bool) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "error starting favorite toggle transaction", "error", err)
		return pgx.ErrTxClosed
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr.Error() != "tx is closed" {
				logger.SafeWarnContext(ctx, "error rolling back favorite toggle", "error", rbErr)
			}
		}
	}()

	var exists bool
	err = tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM products WHERE sku_id = $1)", skuID).Scan(&exists)
	if err != nil {
		logger.SafeErrorContext(ctx, "error verifying product", "error", err, "sku_id", skuID)
		return err
	}
	if !exists {
		return pgx.ErrNoRows
	}

	if priorFavorited {
		tag, execErr := tx.Exec(ctx,
			"DELETE FROM favorites WHERE user_id = $1 AND sku_id = $2",
			viewerID, skuID)
		if execErr != nil {
			err = execErr
			logger.SafeErrorContext(ctx, "error removing favorite", "error", err, "sku_id", skuID)
			return err
		}
		if tag.RowsAffected() > 0 {
			if _, err = tx.Exec(ctx,
				"UPDATE products SET favorite_count = GREATEST(favorite_count - 1, 0) WHERE sku_id = $1",
				skuID); err != nil {
				logger.SafeErrorContext(ctx, "error decrementing favorite count", "error", err, "sku_id", skuID)
				return err
			}
		}
	} else {
		tag, execErr := tx.Exec(ctx,
			"INSERT INTO favorites (user_id, sku_id) VALUES ($1, $2) ON CONFLICT (user_id, sku_id) DO NOTHING",
			viewerID, skuID)
		if execErr != nil {
			err = execErr
			logger.SafeErrorContext(ctx, "error inserting favorite", "error", err, "sku_id", skuID)
			return err
		}
		if tag.RowsAffected() > 0 {
			if _, err = tx.Exec(ctx,
				"UPDATE products SET favorite_count = favorite_count + 1 WHERE sku_id = $1",
				skuID); err != nil {
				logger.SafeErrorContext(ctx, "error incrementing favorite count", "error", err, "sku_id", skuID)
				return err
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		logger.SafeErrorContext(ctx, "error committing favorite toggle", "error", err)
		return err
	}

	logger.SafeInfoContext(ctx, "favorite toggle persisted", "sku_id", skuID, "prior_favorited", priorFavorited)
	return nil
}

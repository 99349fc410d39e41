package storedb

import (
	"context"
	"errors"
	"fmt"

	"whey/domain"
	"whey/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FetchProductDetail resolves the product page record by slug, returning
// pgx.ErrNoRows when the slug is unknown.
func (r *StoreDBRepository) FetchProductDetail(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	viewerID := uuid.Nil
	if user, err := domain.GetUserFromContext(ctx); err == nil {
		viewerID = user.UserID
	}

	query := `SELECT p.sku_id, p.slug, p.name, p.brand,
	p.flavor, p.protein_type, p.form, COALESCE(p.package_type, ''),
	p.protein_grams, p.calories, p.carb_grams, p.sugar_grams,
	p.price_cents, COALESCE(p.image_url, ''),
	EXISTS (SELECT 1 FROM favorites f WHERE f.sku_id = p.sku_id AND f.user_id = $1) AS favorited,
	p.favorite_count, p.created_at,
	COALESCE(p.description, ''), COALESCE(p.ingredients, '{}'), COALESCE(p.serving_size, '')
FROM products p
WHERE p.slug = $2`

	var detail domain.ProductDetail
	item := &detail.Selected
	err := r.pool.QueryRow(ctx, query, viewerID, slug).Scan(
		&item.SkuID, &item.Slug, &item.Name, &item.Brand,
		&item.Flavor, &item.ProteinType, &item.Form, &item.PackageType,
		&item.ProteinGrams, &item.Calories, &item.CarbGrams, &item.SugarGrams,
		&item.PriceCents, &item.ImageURL, &item.Favorited, &item.FavoriteCount,
		&item.CreatedAt,
		&detail.Description, &detail.Ingredients, &detail.ServingSize,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		logger.SafeErrorContext(ctx, "error fetching product detail", "error", err, "slug", slug)
		return nil, fmt.Errorf("error fetching product detail: %w", err)
	}

	return &detail, nil
}

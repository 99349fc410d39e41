package storedb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"whey/domain"
	"whey/utils/logger"

	"github.com/google/uuid"
)

var sortColumns = map[domain.SortBy]string{
	domain.SortByFavoritesCount: "p.favorite_count",
	domain.SortByProtein:        "p.protein_grams",
	domain.SortByCalories:       "p.calories",
	domain.SortByName:           "p.name",
}

// SearchProducts runs the filter/sort/pagination tuple against the catalog.
// Favorited is resolved against the viewer when the request carries one;
// anonymous requests get favorited=false on every row.
func (r *StoreDBRepository) SearchProducts(ctx context.Context, query domain.ProductQuery) ([]domain.ProductItem, error) {
	if query.Limit <= 0 {
		return nil, errors.New("limit must be greater than 0")
	}

	viewerID := uuid.Nil
	if user, err := domain.GetUserFromContext(ctx); err == nil {
		viewerID = user.UserID
	}

	sql, args := buildSearchQuery(query, viewerID, r.domains)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		logger.SafeErrorContext(ctx, "error searching products", "error", err)
		return nil, fmt.Errorf("error searching products: %w", err)
	}
	defer rows.Close()

	var items []domain.ProductItem
	for rows.Next() {
		var item domain.ProductItem
		err := rows.Scan(
			&item.SkuID, &item.Slug, &item.Name, &item.Brand,
			&item.Flavor, &item.ProteinType, &item.Form, &item.PackageType,
			&item.ProteinGrams, &item.Calories, &item.CarbGrams, &item.SugarGrams,
			&item.PriceCents, &item.ImageURL, &item.Favorited, &item.FavoriteCount,
			&item.CreatedAt,
		)
		if err != nil {
			logger.SafeErrorContext(ctx, "error scanning product row", "error", err)
			return nil, fmt.Errorf("error scanning product row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return items, nil
}

func buildSearchQuery(query domain.ProductQuery, viewerID uuid.UUID, domains domain.FilterDomains) (string, []any) {
	var sb strings.Builder
	args := []any{viewerID}

	sb.WriteString(`SELECT p.sku_id, p.slug, p.name, p.brand,
	p.flavor, p.protein_type, p.form, COALESCE(p.package_type, ''),
	p.protein_grams, p.calories, p.carb_grams, p.sugar_grams,
	p.price_cents, COALESCE(p.image_url, ''),
	EXISTS (SELECT 1 FROM favorites f WHERE f.sku_id = p.sku_id AND f.user_id = $1) AS favorited,
	p.favorite_count, p.created_at
FROM products p`)

	var conditions []string
	addCodes := func(column string, codes []string) {
		if len(codes) == 0 {
			return
		}
		args = append(args, codes)
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", column, len(args)))
	}
	addRange := func(column string, r domain.IntRange, dom domain.RangeDomain) {
		if r.Min > dom.Min {
			args = append(args, r.Min)
			conditions = append(conditions, fmt.Sprintf("%s >= $%d", column, len(args)))
		}
		if r.Max < dom.Max {
			args = append(args, r.Max)
			conditions = append(conditions, fmt.Sprintf("%s <= $%d", column, len(args)))
		}
	}

	f := query.Filters
	addCodes("p.flavor", f.Flavors)
	addCodes("p.protein_type", f.ProteinTypes)
	addCodes("p.form", f.Forms)
	addCodes("p.package_type", f.PackageTypes)
	addRange("p.protein_grams", f.ProteinRange, domains.Protein)
	addRange("p.calories", f.CaloriesRange, domains.Calories)
	addRange("p.carb_grams", f.CarbsRange, domains.Carbs)
	addRange("p.sugar_grams", f.SugarRange, domains.Sugar)

	if f.SearchQuery != "" {
		args = append(args, "%"+f.SearchQuery+"%")
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR p.brand ILIKE $%d)", len(args), len(args)))
	}

	if len(conditions) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = sortColumns[domain.DefaultSortBy]
	}
	direction := "DESC"
	if query.SortOrder == domain.SortOrderAsc {
		direction = "ASC"
	}
	// Stable tie-break so pagination windows never overlap.
	sb.WriteString(fmt.Sprintf("\nORDER BY %s %s, p.sku_id ASC", column, direction))

	args = append(args, query.Limit)
	sb.WriteString(fmt.Sprintf("\nLIMIT $%d", len(args)))
	args = append(args, query.Offset)
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	return sb.String(), args
}

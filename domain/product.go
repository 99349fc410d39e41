package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductItem is one row of a discovery result, keyed by the stable SKU id.
type ProductItem struct {
	SkuID         uuid.UUID `json:"sku_id" db:"sku_id"`
	Slug          string    `json:"slug" db:"slug"`
	Name          string    `json:"name" db:"name"`
	Brand         string    `json:"brand" db:"brand"`
	Flavor        string    `json:"flavor" db:"flavor"`
	ProteinType   string    `json:"protein_type" db:"protein_type"`
	Form          string    `json:"form" db:"form"`
	PackageType   string    `json:"package_type,omitempty" db:"package_type"`
	ProteinGrams  int       `json:"protein_grams" db:"protein_grams"`
	Calories      int       `json:"calories" db:"calories"`
	CarbGrams     int       `json:"carb_grams" db:"carb_grams"`
	SugarGrams    int       `json:"sugar_grams" db:"sugar_grams"`
	PriceCents    int       `json:"price_cents" db:"price_cents"`
	ImageURL      string    `json:"image_url,omitempty" db:"image_url"`
	Favorited     bool      `json:"favorited" db:"favorited"`
	FavoriteCount int       `json:"favorite_count" db:"favorite_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ProductDetail is the single-record shape served on the product page.
// Selected embeds the same item struct the list shapes carry so favorite
// patches stay consistent across shapes.
type ProductDetail struct {
	Selected    ProductItem `json:"selected"`
	Description string      `json:"description"`
	Ingredients []string    `json:"ingredients,omitempty"`
	ServingSize string      `json:"serving_size,omitempty"`
}

// ProductQuery is the full tuple handed to the search collaborator:
// resolved filters, ranking, and a pagination window.
type ProductQuery struct {
	Filters   FilterState `json:"filters"`
	SortBy    SortBy      `json:"sort_by"`
	SortOrder SortOrder   `json:"sort_order"`
	Limit     int         `json:"limit"`
	Offset    int         `json:"offset"`
}

package favorite_product_port

import (
	"context"

	"github.com/google/uuid"
)

// SubmitFavoriteTogglePort submits a favorite toggle to the backend.
// priorFavorited is the status before the optimistic patch so the backend
// decides add-vs-remove from a known prior state, not the speculative one.
type SubmitFavoriteTogglePort interface {
	SubmitFavoriteToggle(ctx context.Context, skuID uuid.UUID, viewerID uuid.UUID, priorFavorited bool) error
}

package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserContext is the authenticated viewer attached to a request. Favorite
// toggles require it; read paths work without one (favorites render false).
type UserContext struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks that the viewer context carries an identity and has not expired.
func (uc *UserContext) IsValid() bool {
	return uc.UserID != uuid.Nil && uc.ExpiresAt.After(time.Now())
}

type contextKey string

const UserContextKey contextKey = "user_context"

// GetUserFromContext returns the authenticated viewer or an error when the
// request is anonymous or the session has expired.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}
	if !user.IsValid() {
		return nil, fmt.Errorf("invalid user context")
	}
	return user, nil
}

// SetUserContext attaches the viewer to the request context.
func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

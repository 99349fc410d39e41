package domain

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserFromContext(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		wantErr bool
	}{
		{
			name: "valid viewer",
			ctx: SetUserContext(context.Background(), &UserContext{
				UserID:    uuid.New(),
				ExpiresAt: time.Now().Add(time.Hour),
			}),
			wantErr: false,
		},
		{
			name:    "anonymous request",
			ctx:     context.Background(),
			wantErr: true,
		},
		{
			name: "expired session",
			ctx: SetUserContext(context.Background(), &UserContext{
				UserID:    uuid.New(),
				ExpiresAt: time.Now().Add(-time.Minute),
			}),
			wantErr: true,
		},
		{
			name: "missing identity",
			ctx: SetUserContext(context.Background(), &UserContext{
				ExpiresAt: time.Now().Add(time.Hour),
			}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := GetUserFromContext(tt.ctx)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

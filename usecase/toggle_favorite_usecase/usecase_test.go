package toggle_favorite_usecase

import (
	"context"
	"testing"
	"time"

	"whey/cache"
	"whey/domain"
	"whey/mocks"
	apperrors "whey/utils/errors"
	"whey/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func viewerContext(viewerID uuid.UUID) context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    viewerID,
		Email:     "viewer@example.com",
		SessionID: "session-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func targetItem(skuID uuid.UUID) domain.ProductItem {
	return domain.ProductItem{
		SkuID:         skuID,
		Slug:          "whey-isolate-chocolate",
		Name:          "Whey Isolate Chocolate",
		Favorited:     false,
		FavoriteCount: 5,
	}
}

// seedAllShapes puts the same product into all three cached shapes, the way
// it appears after a discovery scroll, a full list view, and a detail visit.
func seedAllShapes(store *cache.Store, skuID uuid.UUID) {
	other := domain.ProductItem{SkuID: uuid.New(), Name: "Other", FavoriteCount: 2}

	store.Set(cache.ListNamespace+"scroll:flavor=chocolate", &cache.PaginatedEntry{
		Pages:   [][]domain.ProductItem{{other}, {targetItem(skuID)}},
		HasMore: true,
	})
	store.Set(cache.ListNamespace+"full:", &cache.FlatEntry{
		Items: []domain.ProductItem{targetItem(skuID), other},
	})
	store.Set(cache.DetailNamespace+"whey-isolate-chocolate", &cache.DetailEntry{
		Detail: &domain.ProductDetail{
			Selected:    targetItem(skuID),
			Ingredients: []string{"whey protein isolate"},
		},
	})
}

func findEverywhere(t *testing.T, store *cache.Store, skuID uuid.UUID, check func(t *testing.T, item domain.ProductItem)) {
	t.Helper()

	entry, _ := store.Get(cache.ListNamespace + "scroll:flavor=chocolate")
	require.NotNil(t, entry)
	check(t, entry.(*cache.PaginatedEntry).Pages[1][0])

	entry, _ = store.Get(cache.ListNamespace + "full:")
	require.NotNil(t, entry)
	check(t, entry.(*cache.FlatEntry).Items[0])

	entry, _ = store.Get(cache.DetailNamespace + "whey-isolate-chocolate")
	require.NotNil(t, entry)
	check(t, entry.(*cache.DetailEntry).Detail.Selected)
}

func TestToggleFavoriteUsecase_SuccessPatchesEveryShape(t *testing.T) {
	logger.InitLogger("error")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavorite := mocks.NewMockSubmitFavoriteTogglePort(ctrl)
	store := cache.NewStore()
	usecase := NewToggleFavoriteUsecase(mockFavorite, store)

	skuID := uuid.New()
	viewerID := uuid.New()
	seedAllShapes(store, skuID)

	mockFavorite.EXPECT().
		SubmitFavoriteToggle(gomock.Any(), skuID, viewerID, false).
		Return(nil).
		Times(1)

	err := usecase.Execute(viewerContext(viewerID), skuID, false)
	require.NoError(t, err)

	findEverywhere(t, store, skuID, func(t *testing.T, item domain.ProductItem) {
		assert.True(t, item.Favorited)
		assert.Equal(t, 6, item.FavoriteCount)
	})

	// Confirmed toggles leave the entries serving but flagged for refetch.
	_, fresh := store.Get(cache.ListNamespace + "full:")
	assert.False(t, fresh)
}

func TestToggleFavoriteUsecase_RejectionRestoresSnapshotExactly(t *testing.T) {
	logger.InitLogger("error")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavorite := mocks.NewMockSubmitFavoriteTogglePort(ctrl)
	store := cache.NewStore()
	usecase := NewToggleFavoriteUsecase(mockFavorite, store)

	skuID := uuid.New()
	viewerID := uuid.New()
	seedAllShapes(store, skuID)

	mockFavorite.EXPECT().
		SubmitFavoriteToggle(gomock.Any(), skuID, viewerID, false).
		Return(apperrors.ErrFavoriteRejected).
		Times(1)

	err := usecase.Execute(viewerContext(viewerID), skuID, false)
	require.ErrorIs(t, err, apperrors.ErrFavoriteRejected)

	findEverywhere(t, store, skuID, func(t *testing.T, item domain.ProductItem) {
		assert.False(t, item.Favorited)
		assert.Equal(t, 5, item.FavoriteCount)
	})

	// A rollback is not a confirmation: nothing gets marked stale.
	_, fresh := store.Get(cache.ListNamespace + "full:")
	assert.True(t, fresh)
}

func TestToggleFavoriteUsecase_UnfavoritePath(t *testing.T) {
	logger.InitLogger("error")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavorite := mocks.NewMockSubmitFavoriteTogglePort(ctrl)
	store := cache.NewStore()
	usecase := NewToggleFavoriteUsecase(mockFavorite, store)

	skuID := uuid.New()
	viewerID := uuid.New()

	item := targetItem(skuID)
	item.Favorited = true
	item.FavoriteCount = 6
	store.Set(cache.ListNamespace+"full:", &cache.FlatEntry{Items: []domain.ProductItem{item}})

	mockFavorite.EXPECT().
		SubmitFavoriteToggle(gomock.Any(), skuID, viewerID, true).
		Return(nil).
		Times(1)

	err := usecase.Execute(viewerContext(viewerID), skuID, true)
	require.NoError(t, err)

	entry, _ := store.Get(cache.ListNamespace + "full:")
	got := entry.(*cache.FlatEntry).Items[0]
	assert.False(t, got.Favorited)
	assert.Equal(t, 5, got.FavoriteCount)
}

func TestToggleFavoriteUsecase_AnonymousNeverTouchesCache(t *testing.T) {
	logger.InitLogger("error")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavorite := mocks.NewMockSubmitFavoriteTogglePort(ctrl)
	store := cache.NewStore()
	usecase := NewToggleFavoriteUsecase(mockFavorite, store)

	skuID := uuid.New()
	seedAllShapes(store, skuID)

	// No SubmitFavoriteToggle expectation: the gateway must not be called.
	err := usecase.Execute(context.Background(), skuID, false)
	require.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)

	findEverywhere(t, store, skuID, func(t *testing.T, item domain.ProductItem) {
		assert.False(t, item.Favorited)
		assert.Equal(t, 5, item.FavoriteCount)
	})
}

func TestToggleFavoriteUsecase_NilSkuIDIsRejected(t *testing.T) {
	logger.InitLogger("error")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavorite := mocks.NewMockSubmitFavoriteTogglePort(ctrl)
	usecase := NewToggleFavoriteUsecase(mockFavorite, cache.NewStore())

	err := usecase.Execute(viewerContext(uuid.New()), uuid.Nil, false)
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestToggleFavoriteUsecase_AbsentItemStillSubmits(t *testing.T) {
	logger.InitLogger("error")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavorite := mocks.NewMockSubmitFavoriteTogglePort(ctrl)
	store := cache.NewStore()
	usecase := NewToggleFavoriteUsecase(mockFavorite, store)

	skuID := uuid.New()
	viewerID := uuid.New()
	other := domain.ProductItem{SkuID: uuid.New(), Name: "Other", FavoriteCount: 3}
	store.Set(cache.ListNamespace+"full:", &cache.FlatEntry{Items: []domain.ProductItem{other}})

	mockFavorite.EXPECT().
		SubmitFavoriteToggle(gomock.Any(), skuID, viewerID, false).
		Return(nil).
		Times(1)

	err := usecase.Execute(viewerContext(viewerID), skuID, false)
	require.NoError(t, err)

	// The unrelated item is untouched.
	entry, _ := store.Get(cache.ListNamespace + "full:")
	assert.Equal(t, 3, entry.(*cache.FlatEntry).Items[0].FavoriteCount)
}

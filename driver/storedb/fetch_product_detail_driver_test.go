package storedb

import (
	"context"
	"testing"
	"time"

	"whey/domain"
	"whey/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailColumns() []string {
	return append(productColumns(), "description", "ingredients", "serving_size")
}

func TestFetchProductDetail_Found(t *testing.T) {
	logger.InitLogger("error")

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStoreDBRepository(mock, domain.DefaultFilterDomains())
	ctx, viewerID := testViewerContext()

	skuID := uuid.New()
	rows := pgxmock.NewRows(detailColumns()).AddRow(
		skuID, "whey-isolate", "Whey Isolate", "BrandCo",
		"chocolate", "wpi", "powder", "tub",
		27, 110, 2, 1,
		4599, "https://img.example.com/isolate.png", true, 12,
		time.Now(),
		"Cold-filtered isolate.", []string{"whey protein isolate", "cocoa"}, "30g scoop",
	)
	mock.ExpectQuery("WHERE p.slug").
		WithArgs(viewerID, "whey-isolate").
		WillReturnRows(rows)

	detail, err := repo.FetchProductDetail(ctx, "whey-isolate")

	require.NoError(t, err)
	assert.Equal(t, skuID, detail.Selected.SkuID)
	assert.True(t, detail.Selected.Favorited)
	assert.Equal(t, "Cold-filtered isolate.", detail.Description)
	assert.Equal(t, []string{"whey protein isolate", "cocoa"}, detail.Ingredients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchProductDetail_UnknownSlug(t *testing.T) {
	logger.InitLogger("error")

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStoreDBRepository(mock, domain.DefaultFilterDomains())

	mock.ExpectQuery("WHERE p.slug").
		WithArgs(uuid.Nil, "ghost").
		WillReturnError(pgx.ErrNoRows)

	detail, err := repo.FetchProductDetail(context.Background(), "ghost")

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

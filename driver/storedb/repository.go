// Package storedb is the pgx binding of the search and favorite
// collaborators. Queries run against the hosted relational catalog; all
// ranking happens in SQL so the caller only sees ordered pages.
package storedb

import (
	"context"

	"whey/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it too, which keeps driver tests off a live database.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type StoreDBRepository struct {
	pool    DB
	domains domain.FilterDomains
}

// NewStoreDBRepository wires the pool and the configured range domains.
// Ranges equal to their domain add no WHERE clause.
func NewStoreDBRepository(pool DB, domains domain.FilterDomains) *StoreDBRepository {
	return &StoreDBRepository{pool: pool, domains: domains}
}

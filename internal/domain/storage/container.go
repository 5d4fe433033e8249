package storage

import (
	"context"

	"kuliner/internal/db"
	"kuliner/internal/domain/accounts"
	"kuliner/internal/domain/admindashboard"
	"kuliner/internal/domain/listings"
	"kuliner/internal/domain/reviews"
	"kuliner/internal/domain/sessions"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	Accounts  accounts.Store
	Sessions  sessions.Store
	Listings  listings.Store
	Reviews   reviews.Store
	Dashboard admindashboard.Store

	inTx func(ctx context.Context, fn func(tx *Tx) error) error
}

// Tx is a tx-scoped set of repositories for units of work that span tables.
type Tx struct {
	Accounts accounts.Store
	Listings listings.Store
}

func NewContainer(pool *pgxpool.Pool) *Container {
	return &Container{
		Accounts:  accounts.NewRepository(pool),
		Sessions:  sessions.NewRepository(pool),
		Listings:  listings.NewRepository(pool),
		Reviews:   reviews.NewRepository(pool),
		Dashboard: admindashboard.NewRepository(pool),
		inTx: func(ctx context.Context, fn func(tx *Tx) error) error {
			return db.WithTx(pool, ctx, func(tx pgx.Tx) error {
				return fn(&Tx{
					Accounts: accounts.NewRepository(tx),
					Listings: listings.NewRepository(tx),
				})
			})
		},
	}
}

// WithTx runs fn atomically. Without a transactional backend fn runs against
// the container's own stores.
func (c *Container) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	if c.inTx == nil {
		return fn(&Tx{Accounts: c.Accounts, Listings: c.Listings})
	}
	return c.inTx(ctx, fn)
}

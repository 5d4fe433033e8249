package storage

import (
	"context"

	"kuliner/internal/domain/memstore"
)

// NewMemoryContainer backs every store with one in-process memstore.DB.
func NewMemoryContainer() *Container {
	m := memstore.New()
	return &Container{
		Accounts:  m.Accounts(),
		Sessions:  m.Sessions(),
		Listings:  m.Listings(),
		Reviews:   m.Reviews(),
		Dashboard: m.Dashboard(),
		inTx: func(ctx context.Context, fn func(tx *Tx) error) error {
			return m.Atomic(func(tx *memstore.Tx) error {
				return fn(&Tx{Accounts: tx.Accounts, Listings: tx.Listings})
			})
		},
	}
}

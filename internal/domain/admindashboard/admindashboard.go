package admindashboard

import (
	"context"
	"fmt"

	"kuliner/internal/db"
)

type Repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Store {
	return &Repository{db: conn}
}

func (r *Repository) GetStats(ctx context.Context) (*Stats, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM listings),
			(SELECT COUNT(*) FROM accounts WHERE role = 'partner' AND verified = true),
			(SELECT COUNT(*) FROM accounts WHERE role = 'visitor'),
			(SELECT COUNT(*) FROM accounts WHERE role = 'partner' AND verified = false)
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var s Stats
	err := r.db.QueryRow(ctx, q).Scan(
		&s.TotalListings,
		&s.VerifiedPartners,
		&s.Visitors,
		&s.PendingPartners,
	)
	if err != nil {
		return nil, fmt.Errorf("get admin stats: %w", err)
	}

	return &s, nil
}

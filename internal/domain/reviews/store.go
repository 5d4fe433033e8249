package reviews

import (
	"context"
	"errors"
	"fmt"

	"kuliner/internal/db"
	"kuliner/internal/domain/accounts"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Store {
	return &Repository{db: conn}
}

const reviewColumns = `r.id, r.account_id, r.listing_id, r.rating, r.comment, r.status, r.created_at, r.updated_at`

func scanTargets(rv *Review) []any {
	return []any{
		&rv.ID, &rv.AccountID, &rv.ListingID, &rv.Rating,
		&rv.Comment, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt,
	}
}

func (r *Repository) Create(ctx context.Context, rv *Review) error {
	query := `
		INSERT INTO reviews (account_id, listing_id, rating, comment, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query, rv.AccountID, rv.ListingID, rv.Rating, rv.Comment, rv.Status).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews r WHERE r.id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var rv Review
	if err := r.db.QueryRow(ctx, query, id).Scan(scanTargets(&rv)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	return &rv, nil
}

func (r *Repository) SetStatus(ctx context.Context, id int64, status Status) (*Review, error) {
	query := `
		UPDATE reviews r SET status = $1, updated_at = NOW()
		WHERE r.id = $2
		RETURNING ` + reviewColumns

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var rv Review
	if err := r.db.QueryRow(ctx, query, status, id).Scan(scanTargets(&rv)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("set review status %d: %w", id, err)
	}
	return &rv, nil
}

func (r *Repository) ListApprovedFor(ctx context.Context, listingID int64) ([]Review, error) {
	query := `
		SELECT ` + reviewColumns + `, a.id, a.name, a.role, a.business_name
		FROM reviews r
		JOIN accounts a ON a.id = r.account_id
		WHERE r.listing_id = $1 AND r.status = 'approved'
		ORDER BY r.created_at DESC, r.id DESC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list approved reviews: %w", err)
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		var (
			rv     Review
			author accounts.PublicProfile
		)
		targets := append(scanTargets(&rv), &author.ID, &author.Name, &author.Role, &author.BusinessName)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan approved review: %w", err)
		}
		rv.Author = &author
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows approved reviews: %w", err)
	}
	return out, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]Review, error) {
	query := `
		SELECT ` + reviewColumns + `,
		       a.id, a.name, a.role, a.business_name,
		       l.id, l.name, l.slug
		FROM reviews r
		JOIN accounts a ON a.id = r.account_id
		JOIN listings l ON l.id = r.listing_id
		ORDER BY r.created_at DESC, r.id DESC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		var (
			rv      Review
			author  accounts.PublicProfile
			listing ListingRef
		)
		targets := append(scanTargets(&rv),
			&author.ID, &author.Name, &author.Role, &author.BusinessName,
			&listing.ID, &listing.Name, &listing.Slug,
		)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		rv.Author = &author
		rv.Listing = &listing
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows reviews: %w", err)
	}
	return out, nil
}

func (r *Repository) CountPending(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE status = 'pending'`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pending reviews: %w", err)
	}
	return n, nil
}

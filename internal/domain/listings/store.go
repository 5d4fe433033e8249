package listings

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

const listingColumns = `
	l.id, l.owner_id, l.slug,
	l.name, l.category, l.short_description, l.description,
	l.province, l.city, l.price_min, l.price_max,
	l.ingredients, l.steps, l.images, l.status,
	l.created_at, l.updated_at
`

func scanTargets(l *Listing) []any {
	return []any{
		&l.ID, &l.OwnerID, &l.Slug,
		&l.Name, &l.Category, &l.ShortDescription, &l.Description,
		&l.Province, &l.City, &l.PriceMin, &l.PriceMax,
		&l.Ingredients, &l.Steps, &l.Images, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
	}
}

func (r *Repository) Create(ctx context.Context, l *Listing) error {
	query := `
		INSERT INTO listings (
			owner_id, slug, name, category, short_description, description,
			province, city, price_min, price_max,
			ingredients, steps, images, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query,
		l.OwnerID, l.Slug, l.Name, l.Category, l.ShortDescription, l.Description,
		l.Province, l.City, l.PriceMin, l.PriceMax,
		l.Ingredients, l.Steps, l.Images, l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, "listings_slug_key") {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("create listing: %w", err)
	}
	return nil
}

func (r *Repository) getOne(ctx context.Context, where string, arg any) (*Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l WHERE ` + where

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var l Listing
	if err := r.db.QueryRow(ctx, query, arg).Scan(scanTargets(&l)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return &l, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Listing, error) {
	return r.getOne(ctx, "l.id = $1", id)
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Listing, error) {
	return r.getOne(ctx, "l.slug = $1", slug)
}

func (r *Repository) Update(ctx context.Context, l *Listing) error {
	query := `
		UPDATE listings
		SET name = $1, category = $2, short_description = $3, description = $4,
		    province = $5, city = $6, price_min = $7, price_max = $8,
		    ingredients = $9, steps = $10, images = $11, status = $12,
		    updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query,
		l.Name, l.Category, l.ShortDescription, l.Description,
		l.Province, l.City, l.PriceMin, l.PriceMax,
		l.Ingredients, l.Steps, l.Images, l.Status,
		l.ID,
	).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update listing %d: %w", l.ID, err)
	}
	return nil
}

func (r *Repository) SetStatus(ctx context.Context, id int64, status Status) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	ct, err := r.db.Exec(ctx, `UPDATE listings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("set listing status: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) UnpublishByOwner(ctx context.Context, ownerID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	ct, err := r.db.Exec(ctx, `
		UPDATE listings SET status = 'draft', updated_at = NOW()
		WHERE owner_id = $1 AND status = 'published'
	`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("unpublish listings of owner %d: %w", ownerID, err)
	}
	return ct.RowsAffected(), nil
}

// Delete removes the listing; reviews go with it through ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	ct, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete listing %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) list(ctx context.Context, where string, args ...any) ([]Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l ` + where + ` ORDER BY l.created_at DESC, l.id DESC`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	out := []Listing{}
	for rows.Next() {
		var l Listing
		if err := rows.Scan(scanTargets(&l)...); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows listings: %w", err)
	}
	return out, nil
}

func (r *Repository) ListPublished(ctx context.Context) ([]Listing, error) {
	return r.list(ctx, `WHERE l.status = 'published'`)
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]Listing, error) {
	return r.list(ctx, `WHERE l.owner_id = $1`, ownerID)
}

func (r *Repository) ListAllWithOwner(ctx context.Context) ([]Listing, error) {
	query := `
		SELECT ` + listingColumns + `,
		       a.id, a.name, a.role, a.business_name
		FROM listings l
		JOIN accounts a ON a.id = l.owner_id
		ORDER BY l.created_at DESC, l.id DESC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all listings: %w", err)
	}
	defer rows.Close()

	out := []Listing{}
	for rows.Next() {
		var (
			l     Listing
			owner accounts.PublicProfile
		)
		targets := append(scanTargets(&l), &owner.ID, &owner.Name, &owner.Role, &owner.BusinessName)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan listing with owner: %w", err)
		}
		l.Owner = &owner
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows listings with owner: %w", err)
	}
	return out, nil
}

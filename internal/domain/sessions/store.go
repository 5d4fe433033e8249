package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kuliner/internal/db"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Store {
	return &Repository{db: conn}
}

func (r *Repository) Create(ctx context.Context, s *Session) error {
	query := `INSERT INTO sessions (id, account_id, issued_at, expires_at) VALUES ($1, $2, $3, $4)`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if _, err := r.db.Exec(ctx, query, s.ID, s.AccountID, s.IssuedAt, s.ExpiresAt); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (*Session, error) {
	query := `SELECT id, account_id, issued_at, expires_at FROM sessions WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var s Session
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.AccountID, &s.IssuedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	ct, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	ct, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return ct.RowsAffected(), nil
}

package sessions

import (
	"context"
	"fmt"
	"time"

	"kuliner/internal/errs"
)

var (
	ErrNotFound          = fmt.Errorf("session: %w", errs.ErrNotFound)
	QueryTimeoutDuration = time.Second * 5
)

// Session binds a bearer token to exactly one account. It holds no role data.
type Session struct {
	ID        string    `json:"-"`
	AccountID int64     `json:"account_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

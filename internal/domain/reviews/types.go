package reviews

import (
	"context"
	"fmt"
	"time"

	"kuliner/internal/domain/accounts"
	"kuliner/internal/errs"
)

var (
	ErrNotFound          = fmt.Errorf("review: %w", errs.ErrNotFound)
	QueryTimeoutDuration = time.Second * 5
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

type ListingRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Review struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	ListingID int64     `json:"listing_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author  *accounts.PublicProfile `json:"author,omitempty"`
	Listing *ListingRef             `json:"listing,omitempty"`
}

type Store interface {
	Create(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, id int64) (*Review, error)
	// SetStatus is a plain overwrite; the last writer wins.
	SetStatus(ctx context.Context, id int64, status Status) (*Review, error)
	// ListApprovedFor returns approved reviews of a listing with their authors.
	ListApprovedFor(ctx context.Context, listingID int64) ([]Review, error)
	// ListAll returns every review with author and listing attached.
	ListAll(ctx context.Context) ([]Review, error)
	CountPending(ctx context.Context) (int, error)
}

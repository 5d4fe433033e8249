package listings

import (
	"context"
	"fmt"
	"time"

	"kuliner/internal/domain/accounts"
	"kuliner/internal/errs"
)

var (
	ErrNotFound          = fmt.Errorf("listing: %w", errs.ErrNotFound)
	ErrDuplicateSlug     = fmt.Errorf("listing slug already taken: %w", errs.ErrConflict)
	QueryTimeoutDuration = time.Second * 5
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished:
		return true
	default:
		return false
	}
}

// Fields is the closed set of vendor-supplied attributes. Anything not listed
// here is rejected at decode time.
type Fields struct {
	Name             string   `json:"name" validate:"required,max=255"`
	Category         string   `json:"category" validate:"required,max=100"`
	ShortDescription string   `json:"short_description" validate:"required,max=255"`
	Description      string   `json:"description" validate:"required"`
	Province         string   `json:"province" validate:"required,max=100"`
	City             string   `json:"city" validate:"required,max=100"`
	PriceMin         int      `json:"price_min" validate:"gte=0,lte=2147483647"`
	PriceMax         int      `json:"price_max" validate:"gtefield=PriceMin,lte=2147483647"`
	Ingredients      []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Steps            []string `json:"steps" validate:"required,min=1,dive,required"`
	Images           []string `json:"images" validate:"required,min=1,dive,required"`
	Status           Status   `json:"status" validate:"required,oneof=draft published"`
}

type Listing struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"owner_id"`
	Slug    string `json:"slug"`
	Fields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined for admin views
	Owner *accounts.PublicProfile `json:"owner,omitempty"`
}

type Store interface {
	Create(ctx context.Context, l *Listing) error
	GetByID(ctx context.Context, id int64) (*Listing, error)
	GetBySlug(ctx context.Context, slug string) (*Listing, error)
	Update(ctx context.Context, l *Listing) error
	SetStatus(ctx context.Context, id int64, status Status) error
	// UnpublishByOwner moves every published listing of ownerID to draft.
	UnpublishByOwner(ctx context.Context, ownerID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	ListPublished(ctx context.Context) ([]Listing, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Listing, error)
	ListAllWithOwner(ctx context.Context) ([]Listing, error)
}

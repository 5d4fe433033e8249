package accounts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kuliner/internal/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = fmt.Errorf("account: %w", errs.ErrNotFound)
	ErrDuplicateEmail    = fmt.Errorf("an account with that email already exists: %w", errs.ErrConflict)
	QueryTimeoutDuration = time.Second * 5
)

// Role is fixed at account creation. There is no store method that rewrites it.
type Role string

const (
	RoleVisitor Role = "visitor"
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
)

// Roles lists every role; switches over Role should cover all of them.
var Roles = []Role{RoleVisitor, RolePartner, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleVisitor, RolePartner, RoleAdmin:
		return true
	default:
		return false
	}
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// PartnerProfile is present only on partner accounts.
type PartnerProfile struct {
	BusinessName     string  `json:"business_name"`
	NationalID       string  `json:"national_id"`
	TaxID            *string `json:"tax_id,omitempty"`
	BusinessCategory string  `json:"business_category"`
}

type Account struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Password  password        `json:"-"`
	Role      Role            `json:"role"`
	Verified  bool            `json:"verified"`
	Partner   *PartnerProfile `json:"partner,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PublicProfile is the part of an account shown next to listings and reviews.
type PublicProfile struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Role         Role    `json:"role"`
	BusinessName *string `json:"business_name,omitempty"`
}

func (a *Account) PublicProfile() PublicProfile {
	p := PublicProfile{ID: a.ID, Name: a.Name, Role: a.Role}
	if a.Partner != nil {
		name := a.Partner.BusinessName
		p.BusinessName = &name
	}
	return p
}

// NormalizeEmail is applied before every lookup and insert.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type password struct {
	text *string
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.text = &text
	p.hash = hash

	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}

type Store interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id int64) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// Update persists name, partner business name and password hash.
	Update(ctx context.Context, account *Account) error
	// SetVerified only touches partner accounts; any other id is ErrNotFound.
	SetVerified(ctx context.Context, id int64, verified bool) (*Account, error)
	ListPendingPartners(ctx context.Context) ([]Account, error)
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"kuliner/internal/access"
	"kuliner/internal/domain/accounts"
	"kuliner/internal/domain/sessions"
	"kuliner/internal/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const DefaultTokenTTL = 72 * time.Hour

type Grant struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Role      accounts.Role     `json:"role"`
	Account   *accounts.Account `json:"user"`
}

// Principal is a token resolved against the current store contents.
type Principal struct {
	Identity  access.Identity
	Account   *accounts.Account
	SessionID string
}

// Issuer authenticates credentials and resolves bearer tokens. Resolution
// always re-reads the account, so role and verification changes apply to
// tokens already handed out.
type Issuer struct {
	accounts accounts.Store
	sessions sessions.Store
	tokens   Authenticator
	ttl      time.Duration

	// Now is the clock used for issuing and expiry checks.
	Now func() time.Time
}

func NewIssuer(accts accounts.Store, sess sessions.Store, tokens Authenticator, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{
		accounts: accts,
		sessions: sess,
		tokens:   tokens,
		ttl:      ttl,
		Now:      time.Now,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// burnCompare spends the same bcrypt work as a real password check.
func burnCompare(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (i *Issuer) Authenticate(ctx context.Context, email, password string) (*Grant, error) {
	a, err := i.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			burnCompare(password)
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.Password.Compare(password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	if a.Role == accounts.RolePartner && !a.Verified {
		return nil, errs.ErrPendingVerification
	}

	return i.Issue(ctx, a)
}

// Issue mints a session for an account whose credentials were already checked.
func (i *Issuer) Issue(ctx context.Context, a *accounts.Account) (*Grant, error) {
	now := i.Now()
	s := &sessions.Session{
		ID:        uuid.NewString(),
		AccountID: a.ID,
		IssuedAt:  now,
		ExpiresAt: now.Add(i.ttl),
	}

	if err := i.sessions.Create(ctx, s); err != nil {
		return nil, err
	}

	token, err := i.tokens.GenerateToken(s.ID, s.IssuedAt, s.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Grant{Token: token, ExpiresAt: s.ExpiresAt, Role: a.Role, Account: a}, nil
}

func (i *Issuer) Resolve(ctx context.Context, token string) (*Principal, error) {
	now := i.Now()

	sid, err := i.tokens.ValidateToken(token, now)
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}

	s, err := i.sessions.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}
	if s.Expired(now) {
		return nil, errs.ErrUnauthenticated
	}

	a, err := i.accounts.GetByID(ctx, s.AccountID)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}

	if a.Role == accounts.RolePartner && !a.Verified {
		return nil, errs.ErrPendingVerification
	}

	return &Principal{
		Identity:  access.Identity{AccountID: a.ID, Role: a.Role, Verified: a.Verified},
		Account:   a,
		SessionID: s.ID,
	}, nil
}

// Invalidate ends the session behind token. Ending an already-ended session
// is not an error.
func (i *Issuer) Invalidate(ctx context.Context, token string) error {
	sid, err := i.tokens.ValidateToken(token, i.Now())
	if err != nil {
		return errs.ErrUnauthenticated
	}
	if err := i.sessions.Delete(ctx, sid); err != nil && !errors.Is(err, sessions.ErrNotFound) {
		return err
	}
	return nil
}

// Rotate swaps a live token for a fresh one with a full TTL.
func (i *Issuer) Rotate(ctx context.Context, token string) (*Grant, error) {
	p, err := i.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := i.sessions.Delete(ctx, p.SessionID); err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}

	return i.Issue(ctx, p.Account)
}

func (i *Issuer) PruneExpired(ctx context.Context) (int64, error) {
	return i.sessions.DeleteExpired(ctx, i.Now())
}

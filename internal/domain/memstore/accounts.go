package memstore

import (
	"context"
	"sort"

	"kuliner/internal/domain/accounts"
)

type accountStore struct{ table }

func copyAccount(a accounts.Account) accounts.Account {
	if a.Partner != nil {
		p := *a.Partner
		if p.TaxID != nil {
			tax := *p.TaxID
			p.TaxID = &tax
		}
		a.Partner = &p
	}
	return a
}

func (s *accountStore) Create(ctx context.Context, a *accounts.Account) error {
	s.lock()
	defer s.unlock()

	email := accounts.NormalizeEmail(a.Email)
	if _, taken := s.emails[email]; taken {
		return accounts.ErrDuplicateEmail
	}

	s.nextAccountID++
	now := s.now()
	a.ID = s.nextAccountID
	a.Email = email
	a.CreatedAt = now
	a.UpdatedAt = now

	s.accounts[a.ID] = copyAccount(*a)
	s.emails[email] = a.ID
	return nil
}

func (s *accountStore) GetByID(ctx context.Context, id int64) (*accounts.Account, error) {
	s.rlock()
	defer s.runlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, accounts.ErrNotFound
	}
	out := copyAccount(a)
	return &out, nil
}

func (s *accountStore) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	s.rlock()
	defer s.runlock()

	id, ok := s.emails[accounts.NormalizeEmail(email)]
	if !ok {
		return nil, accounts.ErrNotFound
	}
	out := copyAccount(s.accounts[id])
	return &out, nil
}

func (s *accountStore) Update(ctx context.Context, a *accounts.Account) error {
	s.lock()
	defer s.unlock()

	cur, ok := s.accounts[a.ID]
	if !ok {
		return accounts.ErrNotFound
	}
	cur = copyAccount(cur)

	cur.Name = a.Name
	cur.Password = a.Password
	if cur.Role == accounts.RolePartner && a.Partner != nil && cur.Partner != nil {
		cur.Partner.BusinessName = a.Partner.BusinessName
	}
	cur.UpdatedAt = s.now()

	s.accounts[a.ID] = cur
	a.UpdatedAt = cur.UpdatedAt
	return nil
}

func (s *accountStore) SetVerified(ctx context.Context, id int64, verified bool) (*accounts.Account, error) {
	s.lock()
	defer s.unlock()

	cur, ok := s.accounts[id]
	if !ok || cur.Role != accounts.RolePartner {
		return nil, accounts.ErrNotFound
	}
	cur.Verified = verified
	cur.UpdatedAt = s.now()
	s.accounts[id] = cur

	out := copyAccount(cur)
	return &out, nil
}

func (s *accountStore) ListPendingPartners(ctx context.Context) ([]accounts.Account, error) {
	s.rlock()
	defer s.runlock()

	out := []accounts.Account{}
	for _, a := range s.accounts {
		if a.Role == accounts.RolePartner && !a.Verified {
			out = append(out, copyAccount(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// profile assumes s.mu is held.
func (s *DB) profile(id int64) *accounts.PublicProfile {
	a, ok := s.accounts[id]
	if !ok {
		return nil
	}
	p := a.PublicProfile()
	return &p
}

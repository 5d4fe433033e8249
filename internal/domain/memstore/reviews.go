package memstore

import (
	"context"
	"sort"

	"kuliner/internal/domain/accounts"
	"kuliner/internal/domain/admindashboard"
	"kuliner/internal/domain/reviews"
)

type reviewStore struct{ table }

func (s *reviewStore) Create(ctx context.Context, r *reviews.Review) error {
	s.lock()
	defer s.unlock()

	s.nextReviewID++
	now := s.now()
	r.ID = s.nextReviewID
	r.CreatedAt = now
	r.UpdatedAt = now

	stored := *r
	stored.Author, stored.Listing = nil, nil
	s.reviews[r.ID] = stored
	return nil
}

func (s *reviewStore) GetByID(ctx context.Context, id int64) (*reviews.Review, error) {
	s.rlock()
	defer s.runlock()

	r, ok := s.reviews[id]
	if !ok {
		return nil, reviews.ErrNotFound
	}
	return &r, nil
}

func (s *reviewStore) SetStatus(ctx context.Context, id int64, status reviews.Status) (*reviews.Review, error) {
	s.lock()
	defer s.unlock()

	r, ok := s.reviews[id]
	if !ok {
		return nil, reviews.ErrNotFound
	}
	r.Status = status
	r.UpdatedAt = s.now()
	s.reviews[id] = r
	return &r, nil
}

func (s *reviewStore) collect(keep func(r reviews.Review) bool, withListing bool) []reviews.Review {
	out := []reviews.Review{}
	for _, r := range s.reviews {
		if !keep(r) {
			continue
		}
		r.Author = s.profile(r.AccountID)
		if withListing {
			if l, ok := s.listings[r.ListingID]; ok {
				r.Listing = &reviews.ListingRef{ID: l.ID, Name: l.Name, Slug: l.Slug}
			}
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (s *reviewStore) ListApprovedFor(ctx context.Context, listingID int64) ([]reviews.Review, error) {
	s.rlock()
	defer s.runlock()

	return s.collect(func(r reviews.Review) bool {
		return r.ListingID == listingID && r.Status == reviews.StatusApproved
	}, false), nil
}

func (s *reviewStore) ListAll(ctx context.Context) ([]reviews.Review, error) {
	s.rlock()
	defer s.runlock()

	return s.collect(func(reviews.Review) bool { return true }, true), nil
}

func (s *reviewStore) CountPending(ctx context.Context) (int, error) {
	s.rlock()
	defer s.runlock()

	n := 0
	for _, r := range s.reviews {
		if r.Status == reviews.StatusPending {
			n++
		}
	}
	return n, nil
}

type dashboardStore struct{ table }

func (s *dashboardStore) GetStats(ctx context.Context) (*admindashboard.Stats, error) {
	s.rlock()
	defer s.runlock()

	st := admindashboard.Stats{TotalListings: int64(len(s.listings))}
	for _, a := range s.accounts {
		switch a.Role {
		case accounts.RoleVisitor:
			st.Visitors++
		case accounts.RolePartner:
			if a.Verified {
				st.VerifiedPartners++
			} else {
				st.PendingPartners++
			}
		case accounts.RoleAdmin:
		}
	}
	return &st, nil
}

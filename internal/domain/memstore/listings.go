package memstore

import (
	"context"
	"sort"

	"kuliner/internal/domain/listings"
)

type listingStore struct{ table }

func copyListing(l listings.Listing) listings.Listing {
	l.Ingredients = cloneStrings(l.Ingredients)
	l.Steps = cloneStrings(l.Steps)
	l.Images = cloneStrings(l.Images)
	l.Owner = nil
	return l
}

func (s *listingStore) Create(ctx context.Context, l *listings.Listing) error {
	s.lock()
	defer s.unlock()

	if _, taken := s.slugs[l.Slug]; taken {
		return listings.ErrDuplicateSlug
	}

	s.nextListingID++
	now := s.now()
	l.ID = s.nextListingID
	l.CreatedAt = now
	l.UpdatedAt = now

	s.listings[l.ID] = copyListing(*l)
	s.slugs[l.Slug] = l.ID
	return nil
}

func (s *listingStore) GetByID(ctx context.Context, id int64) (*listings.Listing, error) {
	s.rlock()
	defer s.runlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, listings.ErrNotFound
	}
	out := copyListing(l)
	return &out, nil
}

func (s *listingStore) GetBySlug(ctx context.Context, slug string) (*listings.Listing, error) {
	s.rlock()
	defer s.runlock()

	id, ok := s.slugs[slug]
	if !ok {
		return nil, listings.ErrNotFound
	}
	out := copyListing(s.listings[id])
	return &out, nil
}

func (s *listingStore) Update(ctx context.Context, l *listings.Listing) error {
	s.lock()
	defer s.unlock()

	cur, ok := s.listings[l.ID]
	if !ok {
		return listings.ErrNotFound
	}

	cur.Fields = l.Fields
	cur.UpdatedAt = s.now()
	s.listings[l.ID] = copyListing(cur)

	l.UpdatedAt = cur.UpdatedAt
	return nil
}

func (s *listingStore) SetStatus(ctx context.Context, id int64, status listings.Status) error {
	s.lock()
	defer s.unlock()

	cur, ok := s.listings[id]
	if !ok {
		return listings.ErrNotFound
	}
	cur.Status = status
	cur.UpdatedAt = s.now()
	s.listings[id] = cur
	return nil
}

func (s *listingStore) UnpublishByOwner(ctx context.Context, ownerID int64) (int64, error) {
	s.lock()
	defer s.unlock()

	var n int64
	now := s.now()
	for id, l := range s.listings {
		if l.OwnerID == ownerID && l.Status == listings.StatusPublished {
			l.Status = listings.StatusDraft
			l.UpdatedAt = now
			s.listings[id] = l
			n++
		}
	}
	return n, nil
}

func (s *listingStore) Delete(ctx context.Context, id int64) error {
	s.lock()
	defer s.unlock()

	l, ok := s.listings[id]
	if !ok {
		return listings.ErrNotFound
	}
	delete(s.listings, id)
	delete(s.slugs, l.Slug)

	for rid, r := range s.reviews {
		if r.ListingID == id {
			delete(s.reviews, rid)
		}
	}
	return nil
}

func (s *listingStore) collect(keep func(l listings.Listing) bool, withOwner bool) []listings.Listing {
	out := []listings.Listing{}
	for _, l := range s.listings {
		if !keep(l) {
			continue
		}
		c := copyListing(l)
		if withOwner {
			c.Owner = s.profile(l.OwnerID)
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (s *listingStore) ListPublished(ctx context.Context) ([]listings.Listing, error) {
	s.rlock()
	defer s.runlock()

	return s.collect(func(l listings.Listing) bool { return l.Status == listings.StatusPublished }, false), nil
}

func (s *listingStore) ListByOwner(ctx context.Context, ownerID int64) ([]listings.Listing, error) {
	s.rlock()
	defer s.runlock()

	return s.collect(func(l listings.Listing) bool { return l.OwnerID == ownerID }, false), nil
}

func (s *listingStore) ListAllWithOwner(ctx context.Context) ([]listings.Listing, error) {
	s.rlock()
	defer s.runlock()

	return s.collect(func(listings.Listing) bool { return true }, true), nil
}

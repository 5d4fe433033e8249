// Package catalog runs the listing lifecycle: partners create and edit their
// listings, the public sees only what is published.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kuliner/internal/access"
	"kuliner/internal/domain/listings"
	"kuliner/internal/domain/storage"
	"kuliner/internal/errs"
	"kuliner/internal/media"
	"kuliner/internal/validate"

	"go.uber.org/zap"
)

const maxSlugAttempts = 5

type Service struct {
	store  *storage.Container
	slugs  *listings.Slugger
	media  media.Purger
	logger *zap.SugaredLogger
}

func NewService(store *storage.Container, slugs *listings.Slugger, purger media.Purger, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if purger == nil {
		purger = media.Nop{}
	}
	return &Service{store: store, slugs: slugs, media: purger, logger: logger}
}

func (s *Service) Create(ctx context.Context, who *access.Identity, f listings.Fields) (*listings.Listing, error) {
	if err := access.Require(who, access.OpCreateListing, nil); err != nil {
		return nil, err
	}

	f = normalize(f)
	if err := validate.Struct(f); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := s.slugs.Slug(f.Name)
		if err != nil {
			return nil, fmt.Errorf("generate slug: %w", err)
		}

		l := &listings.Listing{OwnerID: who.AccountID, Slug: slug, Fields: f}
		err = s.store.Listings.Create(ctx, l)
		if errors.Is(err, listings.ErrDuplicateSlug) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Infow("listing created", "listing_id", l.ID, "owner_id", l.OwnerID, "status", l.Status)
		return l, nil
	}

	return nil, fmt.Errorf("no free slug after %d attempts: %w", maxSlugAttempts, errs.ErrConflict)
}

// loadFor fetches listing id and checks that who may perform op on it.
func (s *Service) loadFor(ctx context.Context, who *access.Identity, op access.Operation, id int64) (*listings.Listing, error) {
	if who == nil {
		return nil, access.Require(nil, op, nil)
	}

	l, err := s.store.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Require(who, op, &l.OwnerID); err != nil {
		return nil, err
	}
	return l, nil
}

// Update replaces every vendor field of the listing. The slug is kept.
func (s *Service) Update(ctx context.Context, who *access.Identity, id int64, f listings.Fields) (*listings.Listing, error) {
	l, err := s.loadFor(ctx, who, access.OpUpdateListing, id)
	if err != nil {
		return nil, err
	}

	f = normalize(f)
	if err := validate.Struct(f); err != nil {
		return nil, err
	}

	l.Fields = f
	if err := s.store.Listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) SetStatus(ctx context.Context, who *access.Identity, id int64, status listings.Status) (*listings.Listing, error) {
	l, err := s.loadFor(ctx, who, access.OpSetListingStatus, id)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errs.Validation("status", "must be one of: draft published")
	}

	if err := s.store.Listings.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	l.Status = status
	return l, nil
}

// Delete removes the listing and its reviews, then purges hosted images.
// A purge failure is logged and does not fail the delete.
func (s *Service) Delete(ctx context.Context, who *access.Identity, id int64) error {
	l, err := s.loadFor(ctx, who, access.OpDeleteListing, id)
	if err != nil {
		return err
	}

	if err := s.store.Listings.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("listing deleted", "listing_id", id, "by", who.AccountID)

	if err := s.media.Purge(context.WithoutCancel(ctx), l.Images); err != nil {
		s.logger.Warnw("listing images not purged", "listing_id", id, "error", err)
	}
	return nil
}

func (s *Service) ListPublic(ctx context.Context) ([]listings.Listing, error) {
	return s.store.Listings.ListPublished(ctx)
}

// Get looks a listing up by numeric id or by slug. Drafts are only returned
// to their owner and to admins; everyone else gets NotFound.
func (s *Service) Get(ctx context.Context, who *access.Identity, ref string) (*listings.Listing, error) {
	l, err := s.lookup(ctx, ref)
	if err != nil {
		return nil, err
	}

	if l.Status != listings.StatusPublished {
		if !access.Authorize(who, access.OpViewDraftListing, &l.OwnerID).Allowed {
			return nil, listings.ErrNotFound
		}
	}
	return l, nil
}

func (s *Service) lookup(ctx context.Context, ref string) (*listings.Listing, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, listings.ErrNotFound
	}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		l, err := s.store.Listings.GetByID(ctx, id)
		if !errors.Is(err, listings.ErrNotFound) {
			return l, err
		}
	}
	return s.store.Listings.GetBySlug(ctx, ref)
}

func (s *Service) ListOwn(ctx context.Context, who *access.Identity) ([]listings.Listing, error) {
	if err := access.Require(who, access.OpListOwnListings, nil); err != nil {
		return nil, err
	}
	return s.store.Listings.ListByOwner(ctx, who.AccountID)
}

func (s *Service) ListAll(ctx context.Context, who *access.Identity) ([]listings.Listing, error) {
	if err := access.Require(who, access.OpListAllListings, nil); err != nil {
		return nil, err
	}
	return s.store.Listings.ListAllWithOwner(ctx)
}

func normalize(f listings.Fields) listings.Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Category = strings.TrimSpace(f.Category)
	f.ShortDescription = strings.TrimSpace(f.ShortDescription)
	f.Description = strings.TrimSpace(f.Description)
	f.Province = strings.TrimSpace(f.Province)
	f.City = strings.TrimSpace(f.City)
	f.Ingredients = trimAll(f.Ingredients)
	f.Steps = trimAll(f.Steps)
	f.Images = trimAll(f.Images)
	return f
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

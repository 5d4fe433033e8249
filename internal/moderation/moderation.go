// Package moderation handles review submission and the admin review queue.
// A review is public only while approved.
package moderation

import (
	"context"
	"math"
	"strings"

	"kuliner/internal/access"
	"kuliner/internal/domain/listings"
	"kuliner/internal/domain/reviews"
	"kuliner/internal/domain/storage"
	"kuliner/internal/errs"
	"kuliner/internal/validate"

	"go.uber.org/zap"
)

type Service struct {
	store  *storage.Container
	logger *zap.SugaredLogger
}

func NewService(store *storage.Container, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{store: store, logger: logger}
}

type submission struct {
	ListingID int64  `json:"listing_id" validate:"gt=0"`
	Rating    int    `json:"rating" validate:"gte=1,lte=5"`
	Comment   string `json:"comment" validate:"min=5,max=1000"`
}

type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type ApprovedReviews struct {
	Reviews []reviews.Review `json:"reviews"`
	Summary Summary          `json:"summary"`
}

type Queue struct {
	Reviews      []reviews.Review `json:"reviews"`
	PendingCount int              `json:"pending_count"`
}

// Submit files a pending review. Input is validated before the listing is
// looked up, so a bad rating on a missing listing is a validation error.
func (s *Service) Submit(ctx context.Context, who *access.Identity, listingID int64, rating int, comment string) (*reviews.Review, error) {
	if err := access.Require(who, access.OpSubmitReview, nil); err != nil {
		return nil, err
	}

	in := submission{ListingID: listingID, Rating: rating, Comment: strings.TrimSpace(comment)}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	l, err := s.store.Listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l.Status != listings.StatusPublished && !access.Authorize(who, access.OpViewDraftListing, &l.OwnerID).Allowed {
		return nil, listings.ErrNotFound
	}

	r := &reviews.Review{
		AccountID: who.AccountID,
		ListingID: listingID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Status:    reviews.StatusPending,
	}
	if err := s.store.Reviews.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Infow("review submitted", "review_id", r.ID, "listing_id", listingID, "account_id", who.AccountID)
	return r, nil
}

// SetStatus moves a review to any of the three states. Concurrent writes are
// last-write-wins.
func (s *Service) SetStatus(ctx context.Context, who *access.Identity, id int64, status reviews.Status) (*reviews.Review, error) {
	if err := access.Require(who, access.OpSetReviewStatus, nil); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errs.Validation("status", "must be one of: pending approved rejected")
	}

	r, err := s.store.Reviews.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("review moderated", "review_id", id, "status", status, "admin_id", who.AccountID)
	return r, nil
}

// ListApprovedFor returns the approved reviews of a published listing,
// newest first, with their count and average rating.
func (s *Service) ListApprovedFor(ctx context.Context, listingID int64) (*ApprovedReviews, error) {
	l, err := s.store.Listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l.Status != listings.StatusPublished {
		return nil, listings.ErrNotFound
	}

	list, err := s.store.Reviews.ListApprovedFor(ctx, listingID)
	if err != nil {
		return nil, err
	}

	return &ApprovedReviews{Reviews: list, Summary: summarize(list)}, nil
}

func (s *Service) ListAll(ctx context.Context, who *access.Identity) (*Queue, error) {
	if err := access.Require(who, access.OpListAllReviews, nil); err != nil {
		return nil, err
	}

	list, err := s.store.Reviews.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.store.Reviews.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &Queue{Reviews: list, PendingCount: pending}, nil
}

func summarize(list []reviews.Review) Summary {
	if len(list) == 0 {
		return Summary{}
	}
	total := 0
	for _, r := range list {
		total += r.Rating
	}
	avg := float64(total) / float64(len(list))
	return Summary{Count: len(list), Average: math.Round(avg*10) / 10}
}

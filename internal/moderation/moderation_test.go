package moderation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"kuliner/internal/access"
	"kuliner/internal/domain/accounts"
	"kuliner/internal/domain/listings"
	"kuliner/internal/domain/reviews"
	"kuliner/internal/domain/storage"
	"kuliner/internal/errs"
)

var (
	owner   = &access.Identity{AccountID: 10, Role: accounts.RolePartner, Verified: true}
	visitor = &access.Identity{AccountID: 2, Role: accounts.RoleVisitor, Verified: true}
	admin   = &access.Identity{AccountID: 1, Role: accounts.RoleAdmin, Verified: true}
)

func setup(t *testing.T) (*Service, *storage.Container, *listings.Listing) {
	t.Helper()
	store := storage.NewMemoryContainer()
	ctx := context.Background()

	for _, a := range []*accounts.Account{
		{Name: "Admin", Email: "admin@example.com", Role: accounts.RoleAdmin, Verified: true},
		{Name: "Budi", Email: "budi@example.com", Role: accounts.RoleVisitor, Verified: true},
	} {
		if err := store.Accounts.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	l := &listings.Listing{OwnerID: owner.AccountID, Slug: "gudeg-x1", Fields: listings.Fields{Name: "Gudeg", Status: listings.StatusPublished}}
	if err := store.Listings.Create(ctx, l); err != nil {
		t.Fatal(err)
	}
	return NewService(store, nil), store, l
}

func TestSubmitValidatesBeforeLookup(t *testing.T) {
	ctx := context.Background()
	svc, _, l := setup(t)

	tests := []struct {
		name      string
		listingID int64
		rating    int
		comment   string
		field     string
	}{
		{"rating too high", l.ID, 6, "enak sekali", "rating"},
		{"rating zero", l.ID, 0, "enak sekali", "rating"},
		{"comment too short", l.ID, 4, "ok", "comment"},
		{"comment only spaces", l.ID, 4, "       ", "comment"},
		{"bad rating on missing listing", 999, 6, "enak sekali", "rating"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, visitor, tt.listingID, tt.rating, tt.comment)
			var ve *errs.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := ve.Fields[tt.field]; !ok {
				t.Fatalf("field %s not reported: %v", tt.field, ve.Fields)
			}
		})
	}

	if _, err := svc.Submit(ctx, visitor, 999, 5, "enak sekali"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("missing listing: %v", err)
	}
	if _, err := svc.Submit(ctx, nil, l.ID, 5, "enak sekali"); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("anonymous: %v", err)
	}
}

func TestReviewRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, l := setup(t)

	r, err := svc.Submit(ctx, visitor, l.ID, 4, "Gudegnya manis dan legit")
	if err != nil {
		t.Fatal(err)
	}
	if r.Status != reviews.StatusPending {
		t.Fatalf("new review status %s", r.Status)
	}

	pub, _ := svc.ListApprovedFor(ctx, l.ID)
	if len(pub.Reviews) != 0 {
		t.Fatalf("pending review is public: %+v", pub.Reviews)
	}

	if _, err := svc.SetStatus(ctx, visitor, r.ID, reviews.StatusApproved); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("visitor moderating: %v", err)
	}
	if _, err := svc.SetStatus(ctx, admin, r.ID, reviews.StatusApproved); err != nil {
		t.Fatal(err)
	}

	pub, _ = svc.ListApprovedFor(ctx, l.ID)
	if len(pub.Reviews) != 1 || pub.Reviews[0].ID != r.ID || pub.Reviews[0].Author == nil {
		t.Fatalf("approved review missing: %+v", pub.Reviews)
	}

	// every state is reachable from every other state
	for _, st := range []reviews.Status{reviews.StatusRejected, reviews.StatusPending, reviews.StatusApproved, reviews.StatusRejected} {
		got, err := svc.SetStatus(ctx, admin, r.ID, st)
		if err != nil || got.Status != st {
			t.Fatalf("SetStatus(%s) = %+v, %v", st, got, err)
		}
	}

	pub, _ = svc.ListApprovedFor(ctx, l.ID)
	if len(pub.Reviews) != 0 {
		t.Fatal("rejected review still public")
	}

	if _, err := svc.SetStatus(ctx, admin, r.ID, reviews.Status("spam")); !errs.IsValidation(err) {
		t.Fatalf("unknown status: %v", err)
	}
	if _, err := svc.SetStatus(ctx, admin, 999, reviews.StatusApproved); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("unknown review: %v", err)
	}
}

func TestSummaryAndQueue(t *testing.T) {
	ctx := context.Background()
	svc, _, l := setup(t)

	for _, rating := range []int{5, 4, 4, 1} {
		r, err := svc.Submit(ctx, visitor, l.ID, rating, "ulasan yang jujur")
		if err != nil {
			t.Fatal(err)
		}
		if rating != 1 {
			if _, err := svc.SetStatus(ctx, admin, r.ID, reviews.StatusApproved); err != nil {
				t.Fatal(err)
			}
		}
	}

	pub, err := svc.ListApprovedFor(ctx, l.ID)
	if err != nil {
		t.Fatal(err)
	}
	if pub.Summary.Count != 3 || pub.Summary.Average != 4.3 {
		t.Fatalf("summary = %+v", pub.Summary)
	}

	q, err := svc.ListAll(ctx, admin)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Reviews) != 4 || q.PendingCount != 1 {
		t.Fatalf("queue = %d reviews, %d pending", len(q.Reviews), q.PendingCount)
	}
	for _, r := range q.Reviews {
		if r.Listing == nil || r.Listing.Slug != l.Slug {
			t.Fatalf("review without listing context: %+v", r)
		}
	}

	if _, err := svc.ListAll(ctx, owner); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("partner listing queue: %v", err)
	}
}

func TestDraftListingHidesReviews(t *testing.T) {
	ctx := context.Background()
	svc, store, l := setup(t)

	if err := store.Listings.SetStatus(ctx, l.ID, listings.StatusDraft); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ListApprovedFor(ctx, l.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("draft reviews listed: %v", err)
	}
	if _, err := svc.Submit(ctx, visitor, l.ID, 5, "enak sekali"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("review on hidden draft: %v", err)
	}
}

func TestConcurrentStatusWritesLastWins(t *testing.T) {
	ctx := context.Background()
	svc, store, l := setup(t)
	r, _ := svc.Submit(ctx, visitor, l.ID, 5, "enak sekali")

	var wg sync.WaitGroup
	for _, st := range []reviews.Status{reviews.StatusApproved, reviews.StatusRejected} {
		wg.Add(1)
		go func(st reviews.Status) {
			defer wg.Done()
			if _, err := svc.SetStatus(ctx, admin, r.ID, st); err != nil {
				t.Error(err)
			}
		}(st)
	}
	wg.Wait()

	got, err := store.Reviews.GetByID(ctx, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != reviews.StatusApproved && got.Status != reviews.StatusRejected {
		t.Fatalf("status %s is neither write", got.Status)
	}
}

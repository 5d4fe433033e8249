package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"kuliner/internal/domain/accounts"
	"kuliner/internal/domain/listings"
	"kuliner/internal/domain/reviews"
	"kuliner/internal/domain/sessions"
	"kuliner/internal/errs"
)

func seedListing(t *testing.T, m *DB, ownerID int64, slug string) *listings.Listing {
	t.Helper()
	l := &listings.Listing{
		OwnerID: ownerID,
		Slug:    slug,
		Fields: listings.Fields{
			Name:        "Soto Betawi",
			Ingredients: []string{"beef"},
			Steps:       []string{"boil"},
			Images:      []string{"https://img.example/1.jpg"},
			Status:      listings.StatusPublished,
		},
	}
	if err := m.Listings().Create(context.Background(), l); err != nil {
		t.Fatalf("create listing: %v", err)
	}
	return l
}

func TestAccountEmailIsUniqueCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	m := New()

	if err := m.Accounts().Create(ctx, &accounts.Account{Email: "Sari@Example.com", Role: accounts.RoleVisitor}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := m.Accounts().Create(ctx, &accounts.Account{Email: "sari@example.com ", Role: accounts.RoleVisitor})
	if !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestSetVerifiedIgnoresNonPartners(t *testing.T) {
	ctx := context.Background()
	m := New()

	v := &accounts.Account{Email: "v@example.com", Role: accounts.RoleVisitor, Verified: true}
	if err := m.Accounts().Create(ctx, v); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Accounts().SetVerified(ctx, v.ID, false); !errors.Is(err, accounts.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReturnedListingsAreCopies(t *testing.T) {
	ctx := context.Background()
	m := New()
	l := seedListing(t, m, 1, "soto-abcde")

	got, err := m.Listings().GetByID(ctx, l.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.Ingredients[0] = "chicken"
	got.Status = listings.StatusDraft

	again, _ := m.Listings().GetByID(ctx, l.ID)
	if again.Ingredients[0] != "beef" || again.Status != listings.StatusPublished {
		t.Fatalf("stored listing was mutated through a returned copy: %+v", again)
	}
}

func TestDeleteListingRemovesItsReviews(t *testing.T) {
	ctx := context.Background()
	m := New()
	l := seedListing(t, m, 1, "soto-abcde")
	other := seedListing(t, m, 1, "soto-fghij")

	for _, lid := range []int64{l.ID, other.ID} {
		r := &reviews.Review{AccountID: 2, ListingID: lid, Rating: 4, Comment: "enak sekali", Status: reviews.StatusPending}
		if err := m.Reviews().Create(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.Listings().Delete(ctx, l.ID); err != nil {
		t.Fatal(err)
	}

	all, _ := m.Reviews().ListAll(ctx)
	if len(all) != 1 || all[0].ListingID != other.ID {
		t.Fatalf("expected only the other listing's review to remain, got %+v", all)
	}
	if _, err := m.Listings().GetBySlug(ctx, "soto-abcde"); !errors.Is(err, listings.ErrNotFound) {
		t.Fatalf("slug should be released, got %v", err)
	}
}

func TestAtomicRestoresOnError(t *testing.T) {
	ctx := context.Background()
	m := New()
	l := seedListing(t, m, 1, "soto-abcde")

	boom := errors.New("boom")
	err := m.Atomic(func(tx *Tx) error {
		if _, err := tx.Listings.UnpublishByOwner(ctx, 1); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got, _ := m.Listings().GetByID(ctx, l.ID)
	if got.Status != listings.StatusPublished {
		t.Fatalf("status should be restored, got %s", got.Status)
	}
}

func TestAtomicRollbackKeepsConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	m := New()
	l := seedListing(t, m, 1, "soto-abcde")

	started := make(chan struct{})
	written := make(chan error, 1)
	boom := errors.New("boom")

	err := m.Atomic(func(tx *Tx) error {
		if _, err := tx.Listings.UnpublishByOwner(ctx, 1); err != nil {
			return err
		}
		go func() {
			close(started)
			written <- m.Sessions().Create(ctx, &sessions.Session{
				ID:        "other-request",
				AccountID: 2,
				ExpiresAt: time.Now().Add(time.Hour),
			})
		}()
		<-started
		// give the other writer a chance to run while the transaction is open
		time.Sleep(10 * time.Millisecond)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if err := <-written; err != nil {
		t.Fatalf("concurrent session create: %v", err)
	}

	if _, err := m.Sessions().Get(ctx, "other-request"); err != nil {
		t.Fatalf("session written outside the transaction was lost: %v", err)
	}
	got, _ := m.Listings().GetByID(ctx, l.ID)
	if got.Status != listings.StatusPublished {
		t.Fatalf("status should be restored, got %s", got.Status)
	}
}

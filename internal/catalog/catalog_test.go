package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"kuliner/internal/access"
	"kuliner/internal/domain/accounts"
	"kuliner/internal/domain/listings"
	"kuliner/internal/domain/reviews"
	"kuliner/internal/domain/storage"
	"kuliner/internal/errs"
)

type recordingPurger struct {
	urls []string
	err  error
}

func (p *recordingPurger) Purge(_ context.Context, urls []string) error {
	p.urls = append(p.urls, urls...)
	return p.err
}

var (
	partnerA = &access.Identity{AccountID: 10, Role: accounts.RolePartner, Verified: true}
	partnerB = &access.Identity{AccountID: 11, Role: accounts.RolePartner, Verified: true}
	visitor  = &access.Identity{AccountID: 20, Role: accounts.RoleVisitor, Verified: true}
	admin    = &access.Identity{AccountID: 1, Role: accounts.RoleAdmin, Verified: true}
)

func newService(t *testing.T) (*Service, *storage.Container, *recordingPurger) {
	t.Helper()
	store := storage.NewMemoryContainer()
	slugs, err := listings.NewSlugger("test-salt")
	if err != nil {
		t.Fatal(err)
	}
	p := &recordingPurger{}
	return NewService(store, slugs, p, nil), store, p
}

func fields(name string, status listings.Status) listings.Fields {
	return listings.Fields{
		Name:             name,
		Category:         "Makanan Berat",
		ShortDescription: "Rendang khas Padang",
		Description:      "Rendang daging sapi dimasak delapan jam.",
		Province:         "Sumatera Barat",
		City:             "Padang",
		PriceMin:         25000,
		PriceMax:         45000,
		Ingredients:      []string{"daging sapi", "santan"},
		Steps:            []string{"tumis bumbu", "masak santan"},
		Images:           []string{"https://res.cloudinary.com/demo/image/upload/v1/listings/rendang.jpg"},
		Status:           status,
	}
}

func TestCreateValidatesAndSlugs(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	l, err := svc.Create(ctx, partnerA, fields("  Rendang Uni Emi ", listings.StatusPublished))
	if err != nil {
		t.Fatal(err)
	}
	if l.OwnerID != partnerA.AccountID || l.Name != "Rendang Uni Emi" {
		t.Fatalf("unexpected listing %+v", l)
	}
	if !strings.HasPrefix(l.Slug, "rendang-uni-emi-") {
		t.Fatalf("slug %q", l.Slug)
	}

	bad := fields("", listings.Status("archived"))
	bad.PriceMax = 100
	bad.Ingredients = nil
	_, err = svc.Create(ctx, partnerA, bad)
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, f := range []string{"name", "status", "price_max", "ingredients"} {
		if _, ok := ve.Fields[f]; !ok {
			t.Errorf("field %s not reported in %v", f, ve.Fields)
		}
	}
}

func TestOnlyPartnersCreate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	if _, err := svc.Create(ctx, visitor, fields("Soto", listings.StatusDraft)); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("visitor: %v", err)
	}
	if _, err := svc.Create(ctx, nil, fields("Soto", listings.StatusDraft)); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("anonymous: %v", err)
	}
}

func TestDraftsStayPrivate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	pub, _ := svc.Create(ctx, partnerA, fields("Gudeg", listings.StatusPublished))
	draft, _ := svc.Create(ctx, partnerA, fields("Pecel", listings.StatusDraft))

	public, err := svc.ListPublic(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(public) != 1 || public[0].ID != pub.ID {
		t.Fatalf("public listing = %+v", public)
	}

	ref := strconv.FormatInt(draft.ID, 10)
	for _, who := range []*access.Identity{nil, visitor, partnerB} {
		if _, err := svc.Get(ctx, who, ref); !errors.Is(err, errs.ErrNotFound) {
			t.Errorf("draft visible to %+v: %v", who, err)
		}
		if _, err := svc.Get(ctx, who, draft.Slug); !errors.Is(err, errs.ErrNotFound) {
			t.Errorf("draft visible by slug to %+v: %v", who, err)
		}
	}
	for _, who := range []*access.Identity{partnerA, admin} {
		if _, err := svc.Get(ctx, who, ref); err != nil {
			t.Errorf("draft hidden from %+v: %v", who, err)
		}
	}

	got, err := svc.Get(ctx, nil, pub.Slug)
	if err != nil || got.ID != pub.ID {
		t.Fatalf("get by slug = %+v, %v", got, err)
	}

	own, _ := svc.ListOwn(ctx, partnerA)
	if len(own) != 2 || own[0].ID != draft.ID {
		t.Fatalf("own listings should include drafts newest first, got %+v", own)
	}
}

func TestOwnership(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)
	l, _ := svc.Create(ctx, partnerA, fields("Gudeg", listings.StatusPublished))

	if _, err := svc.Update(ctx, partnerB, l.ID, fields("Gudeg B", listings.StatusPublished)); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("foreign update: %v", err)
	}
	if err := svc.Delete(ctx, partnerB, l.ID); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("foreign delete: %v", err)
	}
	if _, err := svc.SetStatus(ctx, visitor, l.ID, listings.StatusDraft); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("visitor set status: %v", err)
	}
	if _, err := svc.Update(ctx, nil, l.ID, fields("x", listings.StatusDraft)); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("anonymous update: %v", err)
	}

	up, err := svc.Update(ctx, partnerA, l.ID, fields("Gudeg Yu Djum", listings.StatusPublished))
	if err != nil {
		t.Fatal(err)
	}
	if up.Name != "Gudeg Yu Djum" || up.Slug != l.Slug {
		t.Fatalf("update should keep the slug, got %+v", up)
	}

	if _, err := svc.SetStatus(ctx, admin, l.ID, listings.StatusDraft); err != nil {
		t.Fatalf("admin set status: %v", err)
	}
	if _, err := svc.SetStatus(ctx, partnerA, l.ID, listings.Status("hidden")); !errs.IsValidation(err) {
		t.Fatalf("bad status: %v", err)
	}
	if _, err := svc.Update(ctx, partnerA, 999, fields("x", listings.StatusDraft)); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("missing listing: %v", err)
	}
}

func TestDeleteCascadesAndPurges(t *testing.T) {
	ctx := context.Background()
	svc, store, purger := newService(t)
	l, _ := svc.Create(ctx, partnerA, fields("Gudeg", listings.StatusPublished))

	r := &reviews.Review{AccountID: visitor.AccountID, ListingID: l.ID, Rating: 5, Comment: "mantap sekali", Status: reviews.StatusApproved}
	if err := store.Reviews.Create(ctx, r); err != nil {
		t.Fatal(err)
	}

	purger.err = errors.New("cdn down")
	if err := svc.Delete(ctx, admin, l.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Listings.GetByID(ctx, l.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("listing still there: %v", err)
	}
	if _, err := store.Reviews.GetByID(ctx, r.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("review survived its listing: %v", err)
	}
	if len(purger.urls) != 1 {
		t.Fatalf("purged %v", purger.urls)
	}
}

func TestListAllIsAdminOnly(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	if _, err := svc.ListAll(ctx, partnerA); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("partner: %v", err)
	}
	if _, err := svc.ListAll(ctx, admin); err != nil {
		t.Fatalf("admin: %v", err)
	}
}

func TestPriceFitsStorage(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	f := fields("Nasi Padang", listings.StatusPublished)
	f.PriceMin = 3_000_000_000
	f.PriceMax = 3_000_000_000
	_, err := svc.Create(ctx, partnerA, f)
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"price_min", "price_max"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Errorf("%s not reported: %v", field, ve.Fields)
		}
	}
}

func TestPunctuationNameResolvesBySlug(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	l, err := svc.Create(ctx, partnerA, fields("!!!", listings.StatusPublished))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := strconv.ParseInt(l.Slug, 10, 64); err == nil {
		t.Fatalf("slug %q looks like an id", l.Slug)
	}

	got, err := svc.Get(ctx, nil, l.Slug)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != l.ID {
		t.Fatalf("slug %q resolved to listing %d, want %d", l.Slug, got.ID, l.ID)
	}
}

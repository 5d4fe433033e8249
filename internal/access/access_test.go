package access

import (
	"errors"
	"testing"

	"kuliner/internal/domain/accounts"
	"kuliner/internal/errs"
)

func ptr(v int64) *int64 { return &v }

func TestAuthorize(t *testing.T) {
	visitor := &Identity{AccountID: 1, Role: accounts.RoleVisitor, Verified: true}
	partner := &Identity{AccountID: 2, Role: accounts.RolePartner, Verified: true}
	admin := &Identity{AccountID: 3, Role: accounts.RoleAdmin, Verified: true}

	tests := []struct {
		name  string
		id    *Identity
		op    Operation
		owner *int64
		want  Decision
	}{
		{"anonymous lists public listings", nil, OpListPublicListings, nil, allow},
		{"anonymous logs in", nil, OpLogin, nil, allow},
		{"anonymous submits review", nil, OpSubmitReview, nil, denyAnon},
		{"anonymous opens admin stats", nil, OpViewStats, nil, denyAnon},
		{"anonymous updates listing", nil, OpUpdateListing, ptr(2), denyAnon},

		{"visitor opens admin stats", visitor, OpViewStats, nil, denyForbid},
		{"partner verifies partner", partner, OpVerifyPartner, nil, denyForbid},
		{"admin verifies partner", admin, OpVerifyPartner, nil, allow},

		{"owner updates own listing", partner, OpUpdateListing, ptr(2), allow},
		{"partner updates foreign listing", partner, OpUpdateListing, ptr(9), denyForbid},
		{"admin deletes foreign listing", admin, OpDeleteListing, ptr(9), allow},
		{"owned op with unknown owner", partner, OpSetListingStatus, nil, denyForbid},
		{"visitor updates own profile", visitor, OpUpdateProfile, ptr(1), allow},
		{"visitor updates other profile", visitor, OpUpdateProfile, ptr(2), denyForbid},

		{"partner creates listing", partner, OpCreateListing, nil, allow},
		{"visitor creates listing", visitor, OpCreateListing, nil, denyForbid},
		{"admin creates listing", admin, OpCreateListing, nil, denyForbid},

		{"visitor submits review", visitor, OpSubmitReview, nil, allow},

		{"unknown operation", admin, Operation("nope"), nil, denyForbid},
		{"unknown operation anonymous", nil, Operation("nope"), nil, denyForbid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Authorize(tt.id, tt.op, tt.owner)
			if got != tt.want {
				t.Fatalf("Authorize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEveryOperationHasAPolicy(t *testing.T) {
	ops := []Operation{
		OpListPublicListings, OpGetListing, OpListApprovedReviews, OpRegister, OpLogin,
		OpViewStats, OpListPendingPartners, OpVerifyPartner, OpListAllListings, OpListAllReviews, OpSetReviewStatus,
		OpUpdateListing, OpDeleteListing, OpSetListingStatus, OpViewDraftListing, OpUpdateProfile,
		OpCreateListing, OpListOwnListings,
		OpSubmitReview, OpViewSelf,
	}
	for _, op := range ops {
		if policy[op] == classUnknown {
			t.Errorf("operation %s has no policy class", op)
		}
	}
}

func TestRequire(t *testing.T) {
	if err := Require(nil, OpViewSelf, nil); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	v := &Identity{AccountID: 1, Role: accounts.RoleVisitor}
	if err := Require(v, OpListAllReviews, nil); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := Require(v, OpViewSelf, nil); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

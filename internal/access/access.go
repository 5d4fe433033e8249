// Package access decides whether an identity may perform an operation. It is
// pure: callers load whatever the decision depends on (the resource owner)
// before asking.
package access

import (
	"kuliner/internal/domain/accounts"
	"kuliner/internal/errs"
)

// Identity is what a resolved token tells the gate about the caller.
type Identity struct {
	AccountID int64
	Role      accounts.Role
	Verified  bool
}

type Operation string

const (
	OpListPublicListings  Operation = "listings.list_public"
	OpGetListing          Operation = "listings.get"
	OpListApprovedReviews Operation = "reviews.list_approved"
	OpRegister            Operation = "accounts.register"
	OpLogin               Operation = "accounts.login"

	OpViewStats           Operation = "admin.stats"
	OpListPendingPartners Operation = "admin.partners.list_pending"
	OpVerifyPartner       Operation = "admin.partners.verify"
	OpListAllListings     Operation = "admin.listings.list"
	OpListAllReviews      Operation = "admin.reviews.list"
	OpSetReviewStatus     Operation = "admin.reviews.set_status"

	OpUpdateListing    Operation = "listings.update"
	OpDeleteListing    Operation = "listings.delete"
	OpSetListingStatus Operation = "listings.set_status"
	OpViewDraftListing Operation = "listings.view_draft"
	OpUpdateProfile    Operation = "accounts.update_profile"

	OpCreateListing   Operation = "listings.create"
	OpListOwnListings Operation = "listings.list_own"

	OpSubmitReview Operation = "reviews.submit"
	OpViewSelf     Operation = "accounts.view_self"
)

type class int

const (
	classUnknown class = iota
	classPublic
	classAdmin
	classOwned
	classPartner
	classAuthenticated
)

var policy = map[Operation]class{
	OpListPublicListings:  classPublic,
	OpGetListing:          classPublic,
	OpListApprovedReviews: classPublic,
	OpRegister:            classPublic,
	OpLogin:               classPublic,

	OpViewStats:           classAdmin,
	OpListPendingPartners: classAdmin,
	OpVerifyPartner:       classAdmin,
	OpListAllListings:     classAdmin,
	OpListAllReviews:      classAdmin,
	OpSetReviewStatus:     classAdmin,

	OpUpdateListing:    classOwned,
	OpDeleteListing:    classOwned,
	OpSetListingStatus: classOwned,
	OpViewDraftListing: classOwned,
	OpUpdateProfile:    classOwned,

	OpCreateListing:   classPartner,
	OpListOwnListings: classPartner,

	OpSubmitReview: classAuthenticated,
	OpViewSelf:     classAuthenticated,
}

type Reason string

const (
	ReasonNone            Reason = ""
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonForbidden       Reason = "forbidden"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

var (
	allow      = Decision{Allowed: true}
	denyAnon   = Decision{Reason: ReasonUnauthenticated}
	denyForbid = Decision{Reason: ReasonForbidden}
)

// Authorize evaluates op for id. ownerID is the account owning the target
// resource and is only consulted for owned-resource operations; nil there
// means the owner is unknown and only an admin passes.
func Authorize(id *Identity, op Operation, ownerID *int64) Decision {
	c := policy[op]

	if c == classPublic {
		return allow
	}
	if id == nil {
		if c == classUnknown {
			return denyForbid
		}
		return denyAnon
	}

	switch c {
	case classAdmin:
		if isAdmin(id.Role) {
			return allow
		}
	case classOwned:
		if isAdmin(id.Role) || (ownerID != nil && *ownerID == id.AccountID) {
			return allow
		}
	case classPartner:
		if isPartner(id.Role) {
			return allow
		}
	case classAuthenticated:
		return allow
	}

	return denyForbid
}

// Require is Authorize reported as an error.
func Require(id *Identity, op Operation, ownerID *int64) error {
	d := Authorize(id, op, ownerID)
	switch {
	case d.Allowed:
		return nil
	case d.Reason == ReasonUnauthenticated:
		return errs.ErrUnauthenticated
	default:
		return errs.ErrForbidden
	}
}

func isAdmin(r accounts.Role) bool {
	switch r {
	case accounts.RoleAdmin:
		return true
	case accounts.RoleVisitor, accounts.RolePartner:
		return false
	default:
		return false
	}
}

func isPartner(r accounts.Role) bool {
	switch r {
	case accounts.RolePartner:
		return true
	case accounts.RoleVisitor, accounts.RoleAdmin:
		return false
	default:
		return false
	}
}

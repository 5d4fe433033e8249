package identity

import (
	"context"
	"errors"

	"kuliner/internal/access"
	"kuliner/internal/domain/accounts"
	"kuliner/internal/domain/storage"
	"kuliner/internal/errs"
	"kuliner/internal/mailer"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

type VerificationResult struct {
	Account *accounts.Account `json:"user"`
	// Changed is false when the partner was already in the requested state.
	Changed             bool  `json:"changed"`
	ListingsUnpublished int64 `json:"listings_unpublished"`
}

func (s *Service) ApprovePartner(ctx context.Context, who *access.Identity, partnerID int64) (*VerificationResult, error) {
	return s.setVerified(ctx, who, partnerID, true)
}

// RejectPartner never deletes the account or its listings.
func (s *Service) RejectPartner(ctx context.Context, who *access.Identity, partnerID int64) (*VerificationResult, error) {
	return s.setVerified(ctx, who, partnerID, false)
}

func (s *Service) DecidePartner(ctx context.Context, who *access.Identity, partnerID int64, d Decision) (*VerificationResult, error) {
	if err := access.Require(who, access.OpVerifyPartner, nil); err != nil {
		return nil, err
	}

	switch d {
	case DecisionApprove:
		return s.ApprovePartner(ctx, who, partnerID)
	case DecisionReject:
		return s.RejectPartner(ctx, who, partnerID)
	default:
		return nil, errs.Validation("decision", "must be one of: approve reject")
	}
}

func (s *Service) ListPendingPartners(ctx context.Context, who *access.Identity) ([]accounts.Account, error) {
	if err := access.Require(who, access.OpListPendingPartners, nil); err != nil {
		return nil, err
	}
	return s.store.Accounts.ListPendingPartners(ctx)
}

func (s *Service) setVerified(ctx context.Context, who *access.Identity, partnerID int64, verified bool) (*VerificationResult, error) {
	if err := access.Require(who, access.OpVerifyPartner, nil); err != nil {
		return nil, err
	}

	var (
		res         VerificationResult
		wasVerified bool
	)
	err := s.store.WithTx(ctx, func(tx *storage.Tx) error {
		before, err := tx.Accounts.GetByID(ctx, partnerID)
		if err != nil {
			return err
		}
		if before.Role != accounts.RolePartner {
			return accounts.ErrNotFound
		}
		wasVerified = before.Verified

		after, err := tx.Accounts.SetVerified(ctx, partnerID, verified)
		if err != nil {
			return err
		}
		res.Account = after

		if !verified && s.cfg.RejectUnpublishes {
			n, err := tx.Listings.UnpublishByOwner(ctx, partnerID)
			if err != nil {
				return err
			}
			res.ListingsUnpublished = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Changed = wasVerified != verified
	s.logger.Infow("partner verification decided",
		"partner_id", partnerID,
		"admin_id", who.AccountID,
		"verified", verified,
		"changed", res.Changed,
		"listings_unpublished", res.ListingsUnpublished,
	)

	if res.Changed {
		s.notify(res.Account, verified, res.ListingsUnpublished > 0)
	}
	return &res, nil
}

func (s *Service) notify(a *accounts.Account, verified, unpublished bool) {
	tmpl := mailer.PartnerRejectedTemplate
	if verified {
		tmpl = mailer.PartnerApprovedTemplate
	}

	var business string
	if a.Partner != nil {
		business = a.Partner.BusinessName
	}

	data := struct {
		Username            string
		BusinessName        string
		LoginURL            string
		ListingsUnpublished bool
	}{a.Name, business, s.cfg.LoginURL, unpublished}

	if status, err := s.mail.Send(tmpl, a.Name, a.Email, data); err != nil {
		s.logger.Warnw("partner verification mail failed", "partner_id", a.ID, "status", status, "error", err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrNotFound)
}

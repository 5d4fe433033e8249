// Package identity owns account registration, profile changes and the
// partner verification workflow.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kuliner/internal/access"
	"kuliner/internal/domain/accounts"
	"kuliner/internal/domain/storage"
	"kuliner/internal/errs"
	"kuliner/internal/mailer"
	"kuliner/internal/validate"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	// RejectUnpublishes moves a partner's published listings back to draft
	// when the partner is rejected.
	RejectUnpublishes bool
	// LoginURL is linked from the approval mail.
	LoginURL string
}

type Service struct {
	store  *storage.Container
	mail   mailer.Client
	logger *zap.SugaredLogger
	cfg    Config
}

func NewService(store *storage.Container, mail mailer.Client, logger *zap.SugaredLogger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if mail == nil {
		mail = mailer.NewLogClient(logger)
	}
	return &Service{store: store, mail: mail, logger: logger, cfg: cfg}
}

type VisitorRegistration struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,password_bytes"`
}

type PartnerRegistration struct {
	Name             string  `json:"name" validate:"required,max=100"`
	Email            string  `json:"email" validate:"required,email,max=255"`
	Password         string  `json:"password" validate:"required,min=8,password_bytes"`
	BusinessName     string  `json:"business_name" validate:"required,max=255"`
	NationalID       string  `json:"national_id" validate:"required,nik"`
	TaxID            *string `json:"tax_id" validate:"omitempty,max=32"`
	BusinessCategory string  `json:"business_category" validate:"required,max=100"`
}

// ProfileUpdate replaces the display name and optionally the business name
// (partners only; ignored for other roles) and the password.
type ProfileUpdate struct {
	Name         string  `json:"name" validate:"required,max=100"`
	BusinessName *string `json:"business_name" validate:"omitempty,min=1,max=255"`
	Password     *string `json:"password" validate:"omitempty,min=8,password_bytes"`
}

// RegisterVisitor creates a verified visitor account. The caller issues the
// session token.
func (s *Service) RegisterVisitor(ctx context.Context, in VisitorRegistration) (*accounts.Account, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	a := &accounts.Account{
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Role:     accounts.RoleVisitor,
		Verified: true,
	}
	if err := setPassword(a, in.Password); err != nil {
		return nil, err
	}

	if err := s.store.Accounts.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Infow("visitor registered", "account_id", a.ID)
	return a, nil
}

// RegisterPartner creates an unverified partner account. No session is
// issued; the partner waits for an admin decision.
func (s *Service) RegisterPartner(ctx context.Context, in PartnerRegistration) (*accounts.Account, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	a := &accounts.Account{
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Role:     accounts.RolePartner,
		Verified: false,
		Partner: &accounts.PartnerProfile{
			BusinessName:     strings.TrimSpace(in.BusinessName),
			NationalID:       in.NationalID,
			TaxID:            in.TaxID,
			BusinessCategory: strings.TrimSpace(in.BusinessCategory),
		},
	}
	if err := setPassword(a, in.Password); err != nil {
		return nil, err
	}

	if err := s.store.Accounts.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Infow("partner registered, awaiting verification", "account_id", a.ID)
	return a, nil
}

// UpdateProfile lets an account edit itself, or an admin edit anyone. Role
// and verification state are never touched here.
func (s *Service) UpdateProfile(ctx context.Context, who *access.Identity, targetID int64, in ProfileUpdate) (*accounts.Account, error) {
	if err := access.Require(who, access.OpUpdateProfile, &targetID); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	a, err := s.store.Accounts.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	a.Name = strings.TrimSpace(in.Name)
	if in.BusinessName != nil && a.Role == accounts.RolePartner && a.Partner != nil {
		a.Partner.BusinessName = strings.TrimSpace(*in.BusinessName)
	}
	if in.Password != nil {
		if err := setPassword(a, *in.Password); err != nil {
			return nil, err
		}
	}

	if err := s.store.Accounts.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// BootstrapAdmin makes sure an admin account with email exists. An existing
// non-admin account with that email is a conflict.
func (s *Service) BootstrapAdmin(ctx context.Context, name, email, password string) (*accounts.Account, bool, error) {
	existing, err := s.store.Accounts.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != accounts.RoleAdmin {
			return nil, false, fmt.Errorf("bootstrap admin %s: %w", email, errs.ErrConflict)
		}
		return existing, false, nil
	case !isNotFound(err):
		return nil, false, err
	}

	if len(password) < 8 {
		return nil, false, errs.Validation("password", "must be at least 8 characters")
	}

	a := &accounts.Account{
		Name:     name,
		Email:    email,
		Role:     accounts.RoleAdmin,
		Verified: true,
	}
	if err := setPassword(a, password); err != nil {
		return nil, false, err
	}
	if err := s.store.Accounts.Create(ctx, a); err != nil {
		return nil, false, err
	}

	s.logger.Infow("admin account bootstrapped", "account_id", a.ID, "email", a.Email)
	return a, true, nil
}

// setPassword hashes text into a. A password bcrypt refuses is a client error.
func setPassword(a *accounts.Account, text string) error {
	if err := a.Password.Set(text); err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return errs.Validation("password", fmt.Sprintf("must be at most %d bytes", validate.MaxPasswordBytes))
		}
		return fmt.Errorf("hash password: %w", err)
	}
	return nil
}

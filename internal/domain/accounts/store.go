package accounts

import (
	"context"
	"errors"
	"fmt"

	"kuliner/internal/db"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Store {
	return &Repository{db: conn}
}

const accountColumns = `
	id, name, email, password, role, verified,
	business_name, national_id, tax_id, business_category,
	created_at, updated_at
`

func scanAccount(row pgx.Row) (*Account, error) {
	var (
		a                                       Account
		businessName, nationalID, taxID, bizCat *string
	)

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.Password.hash,
		&a.Role,
		&a.Verified,
		&businessName,
		&nationalID,
		&taxID,
		&bizCat,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if a.Role == RolePartner {
		a.Partner = &PartnerProfile{TaxID: taxID}
		if businessName != nil {
			a.Partner.BusinessName = *businessName
		}
		if nationalID != nil {
			a.Partner.NationalID = *nationalID
		}
		if bizCat != nil {
			a.Partner.BusinessCategory = *bizCat
		}
	}

	return &a, nil
}

func (r *Repository) Create(ctx context.Context, a *Account) error {
	query := `
		INSERT INTO accounts (
			name, email, password, role, verified,
			business_name, national_id, tax_id, business_category
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	var businessName, nationalID, taxID, bizCat *string
	if a.Partner != nil {
		businessName = &a.Partner.BusinessName
		nationalID = &a.Partner.NationalID
		taxID = a.Partner.TaxID
		bizCat = &a.Partner.BusinessCategory
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(
		ctx, query,
		a.Name, NormalizeEmail(a.Email), a.Password.hash, a.Role, a.Verified,
		businessName, nationalID, taxID, bizCat,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, "accounts_email_key") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create account: %w", err)
	}

	a.Email = NormalizeEmail(a.Email)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	a, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get account %d: %w", id, err)
	}
	return a, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	a, err := scanAccount(r.db.QueryRow(ctx, query, NormalizeEmail(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return a, nil
}

func (r *Repository) Update(ctx context.Context, a *Account) error {
	// role and verified are deliberately absent from the SET list
	query := `
		UPDATE accounts
		SET name = $1,
		    business_name = CASE WHEN role = 'partner' THEN $2 ELSE business_name END,
		    password = $3,
		    updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	var businessName *string
	if a.Partner != nil {
		businessName = &a.Partner.BusinessName
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query, a.Name, businessName, a.Password.hash, a.ID).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update account %d: %w", a.ID, err)
	}
	return nil
}

func (r *Repository) SetVerified(ctx context.Context, id int64, verified bool) (*Account, error) {
	query := `
		UPDATE accounts
		SET verified = $1, updated_at = NOW()
		WHERE id = $2 AND role = 'partner'
		RETURNING ` + accountColumns

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	a, err := scanAccount(r.db.QueryRow(ctx, query, verified, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("set verified on account %d: %w", id, err)
	}
	return a, nil
}

func (r *Repository) ListPendingPartners(ctx context.Context) ([]Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE role = 'partner' AND verified = false
		ORDER BY created_at DESC, id DESC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending partners: %w", err)
	}
	defer rows.Close()

	out := []Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending partner: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows pending partners: %w", err)
	}

	return out, nil
}

package postgres

import (
	"context"
	"errors"
	"time"

	"decentralhire-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyProfileRepo struct {
	db *pgxpool.Pool
}

// NewCompanyProfileRepository creates a new company profile repository
func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

// Create inserts the profile and its creation event in one transaction.
func (r *companyProfileRepo) Create(ctx context.Context, profile *domain.CompanyProfile, event *domain.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err = tx.Exec(ctx, `
		INSERT INTO company_profiles (id, owner_identity, company_name, website_url, logo_cid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		profile.ID, profile.OwnerIdentity, profile.CompanyName, profile.WebsiteURL, profile.LogoCID,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := insertEvent(ctx, tx, event); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a company profile by its reference
func (r *companyProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyProfile, error) {
	query := `
		SELECT id, owner_identity, company_name, website_url, logo_cid, created_at, updated_at
		FROM company_profiles
		WHERE id = $1`

	var p domain.CompanyProfile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.OwnerIdentity, &p.CompanyName, &p.WebsiteURL, &p.LogoCID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Fetch retrieves a page of profiles in registration order. The total is
// counted separately so an offset past the last row still reports the real
// count instead of zero.
func (r *companyProfileRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.CompanyProfile, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM company_profiles`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, owner_identity, company_name, website_url, logo_cid, created_at, updated_at
		FROM company_profiles
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []domain.CompanyProfile
	for rows.Next() {
		var p domain.CompanyProfile
		if err := rows.Scan(
			&p.ID, &p.OwnerIdentity, &p.CompanyName, &p.WebsiteURL, &p.LogoCID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, p)
	}
	return profiles, total, rows.Err()
}

// FetchByOwner retrieves every profile registered by an owner identity
func (r *companyProfileRepo) FetchByOwner(ctx context.Context, ownerIdentity string) ([]domain.CompanyProfile, error) {
	query := `
		SELECT id, owner_identity, company_name, website_url, logo_cid, created_at, updated_at
		FROM company_profiles
		WHERE owner_identity = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, ownerIdentity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.CompanyProfile
	for rows.Next() {
		var p domain.CompanyProfile
		if err := rows.Scan(
			&p.ID, &p.OwnerIdentity, &p.CompanyName, &p.WebsiteURL, &p.LogoCID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *companyProfileRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return r.updateField(ctx, id, "company_name", name)
}

func (r *companyProfileRepo) UpdateWebsiteURL(ctx context.Context, id uuid.UUID, websiteURL string) error {
	return r.updateField(ctx, id, "website_url", websiteURL)
}

func (r *companyProfileRepo) UpdateLogoCID(ctx context.Context, id uuid.UUID, logoCID string) error {
	return r.updateField(ctx, id, "logo_cid", logoCID)
}

// updateField replaces one mutable column; column names are fixed by the
// three callers above, never caller input.
func (r *companyProfileRepo) updateField(ctx context.Context, id uuid.UUID, column, value string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE company_profiles SET `+column+` = $2, updated_at = $3 WHERE id = $1`,
		id, value, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

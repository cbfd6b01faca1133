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

type jobPostingRepo struct {
	db *pgxpool.Pool
}

// NewJobPostingRepository creates a new job posting repository
func NewJobPostingRepository(db *pgxpool.Pool) domain.JobPostingRepository {
	return &jobPostingRepo{db: db}
}

// Create inserts the posting, its fee-ledger entry and its creation event
// in one transaction.
func (r *jobPostingRepo) Create(ctx context.Context, posting *domain.JobPosting, fee *domain.FeeLedgerEntry, event *domain.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	posting.CreatedAt = time.Now()

	_, err = tx.Exec(ctx, `
		INSERT INTO job_postings (id, company_id, owner_identity, title, description_cid, country, city, is_remote, total_hiring_count, hired_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10)`,
		posting.ID, posting.CompanyID, posting.OwnerIdentity, posting.Title, posting.DescriptionCID,
		posting.Country, posting.City, posting.IsRemote, posting.TotalHiringCount, posting.CreatedAt,
	)
	if err != nil {
		return err
	}

	if err := insertFeeLedgerEntry(ctx, tx, fee); err != nil {
		return err
	}
	if err := insertEvent(ctx, tx, event); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a posting by its reference
func (r *jobPostingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobPosting, error) {
	query := `
		SELECT id, company_id, owner_identity, title, description_cid, country, city, is_remote, total_hiring_count, hired_count, created_at
		FROM job_postings
		WHERE id = $1`

	var p domain.JobPosting
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &p.OwnerIdentity, &p.Title, &p.DescriptionCID,
		&p.Country, &p.City, &p.IsRemote, &p.TotalHiringCount, &p.HiredCount, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FetchActiveByCompany retrieves a company's postings whose hiring capacity
// is not yet exhausted, in creation order
func (r *jobPostingRepo) FetchActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.JobPosting, error) {
	query := `
		SELECT id, company_id, owner_identity, title, description_cid, country, city, is_remote, total_hiring_count, hired_count, created_at
		FROM job_postings
		WHERE company_id = $1 AND hired_count < total_hiring_count
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []domain.JobPosting
	for rows.Next() {
		var p domain.JobPosting
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.OwnerIdentity, &p.Title, &p.DescriptionCID,
			&p.Country, &p.City, &p.IsRemote, &p.TotalHiringCount, &p.HiredCount, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

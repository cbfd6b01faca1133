package postgres

import (
	"context"
	"errors"
	"time"

	"decentralhire-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres unique_violation
const uniqueViolationCode = "23505"

type jobApplicationRepo struct {
	db *pgxpool.Pool
}

// NewJobApplicationRepository creates a new job application repository
func NewJobApplicationRepository(db *pgxpool.Pool) domain.JobApplicationRepository {
	return &jobApplicationRepo{db: db}
}

// Create inserts the application, its fee-ledger entry and its creation
// event in one transaction. The unique (posting_id, applicant_identity)
// constraint doubles as the metadata index write: a duplicate applicant
// fails the whole transaction with ErrAlreadyApplied.
func (r *jobApplicationRepo) Create(ctx context.Context, app *domain.JobApplication, fee *domain.FeeLedgerEntry, event *domain.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.StatusInProgress
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO job_applications (id, posting_id, applicant_identity, resume_cid, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.PostingID, app.ApplicantIdentity, app.ResumeCID, app.Status, app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrAlreadyApplied
		}
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

// GetByID retrieves an application by its reference
func (r *jobApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error) {
	query := `
		SELECT id, posting_id, applicant_identity, resume_cid, status, created_at, updated_at
		FROM job_applications
		WHERE id = $1`

	var app domain.JobApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.PostingID, &app.ApplicantIdentity, &app.ResumeCID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// UpdateStatus flips the status and writes the transition event in one
// transaction. The WHERE clause pins the expected predecessor status, so a
// transition that lost the race to an earlier operation changes no row.
func (r *jobApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.ApplicationStatus, event *domain.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE job_applications SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`,
		id, from, to, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidStateTransition
	}

	if err := insertEvent(ctx, tx, event); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Hire marks the application Hired and increments the posting's hired count
// in one transaction. The conditional UPDATE on the posting row is the
// capacity check: when the quota is already met no row changes and the
// whole transaction fails with ErrCapacityExceeded.
func (r *jobApplicationRepo) Hire(ctx context.Context, id, postingID uuid.UUID, event *domain.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE job_postings
		SET hired_count = hired_count + 1
		WHERE id = $1 AND hired_count < total_hiring_count`,
		postingID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCapacityExceeded
	}

	tag, err = tx.Exec(ctx,
		`UPDATE job_applications SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`,
		id, domain.StatusOfferAccepted, domain.StatusHired, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidStateTransition
	}

	if err := insertEvent(ctx, tx, event); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// FetchMetadataByPosting retrieves a page of the posting's applicant index
// in application order
func (r *jobApplicationRepo) FetchMetadataByPosting(ctx context.Context, postingID uuid.UUID, limit, offset int) ([]domain.ApplicationMetadata, error) {
	query := `
		SELECT applicant_identity, id
		FROM job_applications
		WHERE posting_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, postingID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ApplicationMetadata
	for rows.Next() {
		var m domain.ApplicationMetadata
		if err := rows.Scan(&m.ApplicantIdentity, &m.ApplicationID); err != nil {
			return nil, err
		}
		m.Applied = true
		entries = append(entries, m)
	}
	return entries, rows.Err()
}

// GetMetadata retrieves one applicant's index entry for a posting
func (r *jobApplicationRepo) GetMetadata(ctx context.Context, postingID uuid.UUID, applicantIdentity string) (*domain.ApplicationMetadata, error) {
	query := `
		SELECT applicant_identity, id
		FROM job_applications
		WHERE posting_id = $1 AND applicant_identity = $2`

	var m domain.ApplicationMetadata
	err := r.db.QueryRow(ctx, query, postingID, applicantIdentity).Scan(&m.ApplicantIdentity, &m.ApplicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	m.Applied = true
	return &m, nil
}

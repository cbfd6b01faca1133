package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JobPosting owns a hiring quota and the applications submitted against it.
// OwnerIdentity is copied from the owning profile at creation time so
// authorization is a plain equality check against a stored field.
type JobPosting struct {
	ID               uuid.UUID `json:"id"`
	CompanyID        uuid.UUID `json:"company_id"`
	OwnerIdentity    string    `json:"owner_identity"`
	Title            string    `json:"title"`
	DescriptionCID   string    `json:"description_cid"`
	Country          string    `json:"country"`
	City             string    `json:"city"`
	IsRemote         bool      `json:"is_remote"`
	TotalHiringCount int       `json:"total_hiring_count"`
	HiredCount       int       `json:"hired_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// IsActive reports whether the posting still has open hiring capacity.
func (p *JobPosting) IsActive() bool {
	return p.HiredCount < p.TotalHiringCount
}

// IsOwnedBy reports whether identity may act as the posting's company.
func (p *JobPosting) IsOwnedBy(identity string) bool {
	return identity != "" && p.OwnerIdentity == identity
}

// ApplicationMetadata is the lightweight index entry a posting keeps per
// applicant, so "who applied" is answerable without loading applications.
type ApplicationMetadata struct {
	ApplicantIdentity string    `json:"applicant_identity"`
	ApplicationID     uuid.UUID `json:"application_id"`
	Applied           bool      `json:"applied"`
}

// ReceivedApplicationsPageSize bounds getReceivedApplications pages.
const ReceivedApplicationsPageSize = 20

// JobPostingRepository defines storage operations. Create persists the
// posting together with its fee-ledger entry and creation event in one
// transaction; none of the three can exist without the others.
type JobPostingRepository interface {
	Create(ctx context.Context, posting *JobPosting, fee *FeeLedgerEntry, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*JobPosting, error)
	FetchActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]JobPosting, error)
}

// JobPostingUsecase covers applying and the owner-gated applicant index.
type JobPostingUsecase interface {
	GetPosting(ctx context.Context, id uuid.UUID) (*JobPosting, error)
	ApplyForJob(ctx context.Context, caller string, postingID uuid.UUID, resumeCID string, paymentAmount int64) (*JobApplication, error)
	GetReceivedApplications(ctx context.Context, caller string, postingID uuid.UUID, offset int) ([]ApplicationMetadata, error)
	GetReceivedApplication(ctx context.Context, caller string, postingID uuid.UUID, applicantIdentity string) (*ApplicationMetadata, error)
}

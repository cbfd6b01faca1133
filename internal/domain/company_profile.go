package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CompanyProfile represents a registered company. OwnerIdentity is fixed at
// creation time and is the sole identity allowed to mutate the profile or
// create postings under it.
type CompanyProfile struct {
	ID            uuid.UUID `json:"id"`
	OwnerIdentity string    `json:"owner_identity"`
	CompanyName   string    `json:"company_name"`
	WebsiteURL    string    `json:"website_url"`
	LogoCID       string    `json:"logo_cid"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether identity may mutate this profile.
func (p *CompanyProfile) IsOwnedBy(identity string) bool {
	return identity != "" && p.OwnerIdentity == identity
}

// CompanyProfileRepository defines storage operations. Create persists the
// profile and its creation event in one transaction.
type CompanyProfileRepository interface {
	Create(ctx context.Context, profile *CompanyProfile, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*CompanyProfile, error)
	Fetch(ctx context.Context, limit, offset int) ([]CompanyProfile, int64, error)
	FetchByOwner(ctx context.Context, ownerIdentity string) ([]CompanyProfile, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	UpdateWebsiteURL(ctx context.Context, id uuid.UUID, websiteURL string) error
	UpdateLogoCID(ctx context.Context, id uuid.UUID, logoCID string) error
}

// RegistryUsecase is the top-level factory: it creates company profiles on
// behalf of a caller and records them. Append-only; no update or delete.
type RegistryUsecase interface {
	CreateCompanyProfile(ctx context.Context, caller, companyName, websiteURL, logoCID string) (*CompanyProfile, error)
	GetCompanyProfile(ctx context.Context, id uuid.UUID) (*CompanyProfile, error)
	ListCompanyProfiles(ctx context.Context, page, pageSize int) ([]CompanyProfile, int64, error)
	ListCompanyProfilesByOwner(ctx context.Context, ownerIdentity string) ([]CompanyProfile, error)
}

// CompanyProfileUsecase covers the owner-gated profile surface.
type CompanyProfileUsecase interface {
	SetCompanyName(ctx context.Context, caller string, profileID uuid.UUID, name string) error
	SetWebsiteURL(ctx context.Context, caller string, profileID uuid.UUID, websiteURL string) error
	SetLogoCID(ctx context.Context, caller string, profileID uuid.UUID, logoCID string) error
	CreateJobPosting(ctx context.Context, caller string, profileID uuid.UUID, input CreateJobPostingInput) (*JobPosting, error)
	ListActiveJobPostings(ctx context.Context, profileID uuid.UUID) ([]JobPosting, error)
}

// CreateJobPostingInput carries the posting fields plus the attached payment.
type CreateJobPostingInput struct {
	Title            string `json:"title" validate:"required"`
	DescriptionCID   string `json:"description_cid" validate:"required"`
	Country          string `json:"country"`
	City             string `json:"city"`
	IsRemote         bool   `json:"is_remote"`
	TotalHiringCount int    `json:"total_hiring_count" validate:"gte=0"`
	PaymentAmount    int64  `json:"payment_amount"`
}

package usecase

import (
	"context"

	"decentralhire-backend/internal/domain"
	"decentralhire-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type companyProfileUsecase struct {
	profileRepo domain.CompanyProfileRepository
	postingRepo domain.JobPostingRepository
	bus         domain.EventBus
	fees        domain.FeePolicy
	validate    *validator.Validate
}

// NewCompanyProfileUsecase creates the owner-gated company profile usecase
func NewCompanyProfileUsecase(
	profileRepo domain.CompanyProfileRepository,
	postingRepo domain.JobPostingRepository,
	bus domain.EventBus,
	fees domain.FeePolicy,
	validate *validator.Validate,
) domain.CompanyProfileUsecase {
	return &companyProfileUsecase{
		profileRepo: profileRepo,
		postingRepo: postingRepo,
		bus:         bus,
		fees:        fees,
		validate:    validate,
	}
}

// SetCompanyName replaces the company name; owner only
func (uc *companyProfileUsecase) SetCompanyName(ctx context.Context, caller string, profileID uuid.UUID, name string) error {
	if _, err := uc.ownedProfile(ctx, caller, profileID); err != nil {
		return err
	}
	if err := uc.profileRepo.UpdateName(ctx, profileID, name); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// SetWebsiteURL replaces the website URL; owner only
func (uc *companyProfileUsecase) SetWebsiteURL(ctx context.Context, caller string, profileID uuid.UUID, websiteURL string) error {
	if _, err := uc.ownedProfile(ctx, caller, profileID); err != nil {
		return err
	}
	if err := uc.profileRepo.UpdateWebsiteURL(ctx, profileID, websiteURL); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// SetLogoCID replaces the logo content identifier; owner only. The CID is
// stored verbatim, never dereferenced.
func (uc *companyProfileUsecase) SetLogoCID(ctx context.Context, caller string, profileID uuid.UUID, logoCID string) error {
	if _, err := uc.ownedProfile(ctx, caller, profileID); err != nil {
		return err
	}
	if err := uc.profileRepo.UpdateLogoCID(ctx, profileID, logoCID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// CreateJobPosting creates a posting under the profile. Owner only and
// fee-gated: the attached payment must meet the posting fee and is credited
// to the treasury in the same transaction as the posting itself.
func (uc *companyProfileUsecase) CreateJobPosting(ctx context.Context, caller string, profileID uuid.UUID, input domain.CreateJobPostingInput) (*domain.JobPosting, error) {
	// 1. Authorization before payment: an unauthorized caller is never charged
	profile, err := uc.ownedProfile(ctx, caller, profileID)
	if err != nil {
		return nil, err
	}

	// 2. Field validation
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// 3. Fee gate
	if input.PaymentAmount < uc.fees.PostingFee {
		return nil, errInsufficientPayment()
	}

	// 4. Build the posting, copying the profile owner as its authorizer
	posting := &domain.JobPosting{
		ID:               uuid.New(),
		CompanyID:        profile.ID,
		OwnerIdentity:    profile.OwnerIdentity,
		Title:            input.Title,
		DescriptionCID:   input.DescriptionCID,
		Country:          input.Country,
		City:             input.City,
		IsRemote:         input.IsRemote,
		TotalHiringCount: input.TotalHiringCount,
	}

	fee := domain.NewFeeLedgerEntry(caller, uc.fees.TreasuryIdentity, posting.ID, domain.FeePurposeJobPosting, input.PaymentAmount)
	event := domain.NewEvent(domain.EventJobPostingCreated, caller, posting.ID, map[string]any{
		"company_id": profile.ID,
		"title":      posting.Title,
	})

	if err := uc.postingRepo.Create(ctx, posting, fee, event); err != nil {
		return nil, apperror.Internal(err)
	}
	publishEvent(ctx, uc.bus, event)

	return posting, nil
}

// ListActiveJobPostings returns the profile's postings with open capacity,
// in creation order; pure read, unrestricted
func (uc *companyProfileUsecase) ListActiveJobPostings(ctx context.Context, profileID uuid.UUID) ([]domain.JobPosting, error) {
	if _, err := uc.profileRepo.GetByID(ctx, profileID); err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return uc.postingRepo.FetchActiveByCompany(ctx, profileID)
}

// ownedProfile loads the profile and checks the caller is its owner.
func (uc *companyProfileUsecase) ownedProfile(ctx context.Context, caller string, profileID uuid.UUID) (*domain.CompanyProfile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, apperror.Internal(err)
	}
	if !profile.IsOwnedBy(caller) {
		return nil, errOwnerOnly()
	}
	return profile, nil
}

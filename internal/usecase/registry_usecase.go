package usecase

import (
	"context"

	"decentralhire-backend/internal/domain"
	"decentralhire-backend/pkg/apperror"

	"github.com/google/uuid"
)

type registryUsecase struct {
	profileRepo domain.CompanyProfileRepository
	bus         domain.EventBus
}

// NewRegistryUsecase creates the top-level registry usecase
func NewRegistryUsecase(profileRepo domain.CompanyProfileRepository, bus domain.EventBus) domain.RegistryUsecase {
	return &registryUsecase{
		profileRepo: profileRepo,
		bus:         bus,
	}
}

// CreateCompanyProfile registers a new company owned by the caller. No fee
// is required and any authenticated identity may register; the registry is
// append-only.
func (uc *registryUsecase) CreateCompanyProfile(ctx context.Context, caller, companyName, websiteURL, logoCID string) (*domain.CompanyProfile, error) {
	if caller == "" {
		return nil, apperror.Unauthorized("Caller identity is required")
	}

	profile := &domain.CompanyProfile{
		ID:            uuid.New(),
		OwnerIdentity: caller,
		CompanyName:   companyName,
		WebsiteURL:    websiteURL,
		LogoCID:       logoCID,
	}

	event := domain.NewEvent(domain.EventCompanyProfileCreated, caller, profile.ID, map[string]any{
		"company_name": companyName,
		"website_url":  websiteURL,
	})

	if err := uc.profileRepo.Create(ctx, profile, event); err != nil {
		return nil, apperror.Internal(err)
	}
	publishEvent(ctx, uc.bus, event)

	return profile, nil
}

// GetCompanyProfile resolves a profile reference; pure read, unrestricted
func (uc *registryUsecase) GetCompanyProfile(ctx context.Context, id uuid.UUID) (*domain.CompanyProfile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// ListCompanyProfiles returns a page of registered companies
func (uc *registryUsecase) ListCompanyProfiles(ctx context.Context, page, pageSize int) ([]domain.CompanyProfile, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return uc.profileRepo.Fetch(ctx, pageSize, offset)
}

// ListCompanyProfilesByOwner returns every profile an identity registered
func (uc *registryUsecase) ListCompanyProfilesByOwner(ctx context.Context, ownerIdentity string) ([]domain.CompanyProfile, error) {
	return uc.profileRepo.FetchByOwner(ctx, ownerIdentity)
}

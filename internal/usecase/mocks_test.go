package usecase_test

import (
	"context"

	"decentralhire-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockCompanyProfileRepo struct {
	mock.Mock
}

func (m *MockCompanyProfileRepo) Create(ctx context.Context, profile *domain.CompanyProfile, event *domain.Event) error {
	return m.Called(ctx, profile, event).Error(0)
}

func (m *MockCompanyProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

func (m *MockCompanyProfileRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.CompanyProfile, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.CompanyProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockCompanyProfileRepo) FetchByOwner(ctx context.Context, ownerIdentity string) ([]domain.CompanyProfile, error) {
	args := m.Called(ctx, ownerIdentity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyProfile), args.Error(1)
}

func (m *MockCompanyProfileRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *MockCompanyProfileRepo) UpdateWebsiteURL(ctx context.Context, id uuid.UUID, websiteURL string) error {
	return m.Called(ctx, id, websiteURL).Error(0)
}

func (m *MockCompanyProfileRepo) UpdateLogoCID(ctx context.Context, id uuid.UUID, logoCID string) error {
	return m.Called(ctx, id, logoCID).Error(0)
}

type MockJobPostingRepo struct {
	mock.Mock
}

func (m *MockJobPostingRepo) Create(ctx context.Context, posting *domain.JobPosting, fee *domain.FeeLedgerEntry, event *domain.Event) error {
	return m.Called(ctx, posting, fee, event).Error(0)
}

func (m *MockJobPostingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepo) FetchActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.JobPosting, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

type MockJobApplicationRepo struct {
	mock.Mock
}

func (m *MockJobApplicationRepo) Create(ctx context.Context, app *domain.JobApplication, fee *domain.FeeLedgerEntry, event *domain.Event) error {
	return m.Called(ctx, app, fee, event).Error(0)
}

func (m *MockJobApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.ApplicationStatus, event *domain.Event) error {
	return m.Called(ctx, id, from, to, event).Error(0)
}

func (m *MockJobApplicationRepo) Hire(ctx context.Context, id, postingID uuid.UUID, event *domain.Event) error {
	return m.Called(ctx, id, postingID, event).Error(0)
}

func (m *MockJobApplicationRepo) FetchMetadataByPosting(ctx context.Context, postingID uuid.UUID, limit, offset int) ([]domain.ApplicationMetadata, error) {
	args := m.Called(ctx, postingID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationMetadata), args.Error(1)
}

func (m *MockJobApplicationRepo) GetMetadata(ctx context.Context, postingID uuid.UUID, applicantIdentity string) (*domain.ApplicationMetadata, error) {
	args := m.Called(ctx, postingID, applicantIdentity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationMetadata), args.Error(1)
}

type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

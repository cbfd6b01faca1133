package usecase_test

import (
	"context"
	"testing"

	"decentralhire-backend/internal/domain"
	"decentralhire-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCompanyProfile(t *testing.T) {
	t.Run("Should create a profile owned by the caller", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		mockBus := new(MockEventBus)
		uc := usecase.NewRegistryUsecase(mockRepo, mockBus)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CompanyProfile"), mock.AnythingOfType("*domain.Event")).
			Return(nil).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.CompanyProfile)
				e := args.Get(2).(*domain.Event)
				assert.Equal(t, "0xowner", p.OwnerIdentity)
				assert.Equal(t, domain.EventCompanyProfileCreated, e.Name)
				assert.Equal(t, "0xowner", e.ActorIdentity)
				assert.Equal(t, "Example Company", e.Payload["company_name"])
				assert.Equal(t, "https://example.com", e.Payload["website_url"])
			})
		mockBus.On("Publish", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

		profile, err := uc.CreateCompanyProfile(context.Background(), "0xowner", "Example Company", "https://example.com", "")
		assert.NoError(t, err)
		assert.Equal(t, "Example Company", profile.CompanyName)
		mockRepo.AssertExpectations(t)
		mockBus.AssertExpectations(t)
	})

	t.Run("Should default to empty name and url", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		mockBus := new(MockEventBus)
		uc := usecase.NewRegistryUsecase(mockRepo, mockBus)

		mockRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mockBus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		profile, err := uc.CreateCompanyProfile(context.Background(), "0xowner", "", "", "")
		assert.NoError(t, err)
		assert.Equal(t, "", profile.CompanyName)
		assert.Equal(t, "", profile.WebsiteURL)
		assert.Equal(t, "", profile.LogoCID)
	})

	t.Run("Should fail safe without a caller identity", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		uc := usecase.NewRegistryUsecase(mockRepo, new(MockEventBus))

		_, err := uc.CreateCompanyProfile(context.Background(), "", "Example Company", "", "")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetCompanyProfile(t *testing.T) {
	mockRepo := new(MockCompanyProfileRepo)
	uc := usecase.NewRegistryUsecase(mockRepo, new(MockEventBus))

	t.Run("Should map missing profile to not found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

		_, err := uc.GetCompanyProfile(context.Background(), id)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Company profile not found")
	})
}

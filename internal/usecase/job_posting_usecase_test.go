package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"decentralhire-backend/internal/domain"
	"decentralhire-backend/internal/usecase"
	"decentralhire-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func openPosting(owner string) *domain.JobPosting {
	return &domain.JobPosting{
		ID:               uuid.New(),
		CompanyID:        uuid.New(),
		OwnerIdentity:    owner,
		Title:            "Software Engineer",
		TotalHiringCount: 5,
		HiredCount:       0,
	}
}

func TestApplyForJob(t *testing.T) {
	t.Run("Should create an application with status InProgress", func(t *testing.T) {
		postingRepo := new(MockJobPostingRepo)
		appRepo := new(MockJobApplicationRepo)
		bus := new(MockEventBus)
		uc := usecase.NewJobPostingUsecase(postingRepo, appRepo, bus, testFees)

		posting := openPosting("0xcompany")
		postingRepo.On("GetByID", mock.Anything, posting.ID).Return(posting, nil)
		appRepo.On("GetMetadata", mock.Anything, posting.ID, "0xapplicant").Return(nil, domain.ErrNotFound)
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobApplication"), mock.AnythingOfType("*domain.FeeLedgerEntry"), mock.AnythingOfType("*domain.Event")).
			Return(nil).
			Run(func(args mock.Arguments) {
				app := args.Get(1).(*domain.JobApplication)
				fee := args.Get(2).(*domain.FeeLedgerEntry)
				e := args.Get(3).(*domain.Event)
				assert.Equal(t, domain.StatusInProgress, app.Status)
				assert.Equal(t, "0xapplicant", app.ApplicantIdentity)
				assert.Equal(t, domain.FeePurposeJobApplication, fee.Purpose)
				assert.Equal(t, domain.EventJobApplicationCreated, e.Name)
				assert.Equal(t, "QmAbCd", e.Payload["resume_cid"])
			})
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		app, err := uc.ApplyForJob(context.Background(), "0xapplicant", posting.ID, "QmAbCd", testFees.ApplicationFee)
		assert.NoError(t, err)
		assert.Equal(t, "QmAbCd", app.ResumeCID)
		assert.Equal(t, posting.ID, app.PostingID)
		appRepo.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("Should reject a second application from the same identity", func(t *testing.T) {
		postingRepo := new(MockJobPostingRepo)
		appRepo := new(MockJobApplicationRepo)
		uc := usecase.NewJobPostingUsecase(postingRepo, appRepo, new(MockEventBus), testFees)

		posting := openPosting("0xcompany")
		postingRepo.On("GetByID", mock.Anything, posting.ID).Return(posting, nil)
		appRepo.On("GetMetadata", mock.Anything, posting.ID, "0xapplicant").
			Return(&domain.ApplicationMetadata{ApplicantIdentity: "0xapplicant", Applied: true}, nil)

		_, err := uc.ApplyForJob(context.Background(), "0xapplicant", posting.ID, "QmAbCd", testFees.ApplicationFee)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusConflict, appErr.Code)
		assert.Contains(t, err.Error(), "already applied")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject an underpaid application fee with nothing created", func(t *testing.T) {
		postingRepo := new(MockJobPostingRepo)
		appRepo := new(MockJobApplicationRepo)
		bus := new(MockEventBus)
		uc := usecase.NewJobPostingUsecase(postingRepo, appRepo, bus, testFees)

		posting := openPosting("0xcompany")
		postingRepo.On("GetByID", mock.Anything, posting.ID).Return(posting, nil)

		_, err := uc.ApplyForJob(context.Background(), "0xapplicant", posting.ID, "QmAbCd", testFees.ApplicationFee-1)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusPaymentRequired, appErr.Code)
		assert.Contains(t, err.Error(), "below the required fee")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Should reject applying to a fully hired posting", func(t *testing.T) {
		postingRepo := new(MockJobPostingRepo)
		appRepo := new(MockJobApplicationRepo)
		uc := usecase.NewJobPostingUsecase(postingRepo, appRepo, new(MockEventBus), testFees)

		posting := openPosting("0xcompany")
		posting.HiredCount = posting.TotalHiringCount
		postingRepo.On("GetByID", mock.Anything, posting.ID).Return(posting, nil)

		_, err := uc.ApplyForJob(context.Background(), "0xapplicant", posting.ID, "QmAbCd", testFees.ApplicationFee)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no remaining hiring capacity")
	})

	t.Run("Should require a resume content identifier", func(t *testing.T) {
		uc := usecase.NewJobPostingUsecase(new(MockJobPostingRepo), new(MockJobApplicationRepo), new(MockEventBus), testFees)

		_, err := uc.ApplyForJob(context.Background(), "0xapplicant", uuid.New(), "", testFees.ApplicationFee)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Resume content identifier is required")
	})
}

func TestGetReceivedApplications(t *testing.T) {
	t.Run("Should return a bounded page to the posting owner", func(t *testing.T) {
		postingRepo := new(MockJobPostingRepo)
		appRepo := new(MockJobApplicationRepo)
		uc := usecase.NewJobPostingUsecase(postingRepo, appRepo, new(MockEventBus), testFees)

		posting := openPosting("0xcompany")
		entries := []domain.ApplicationMetadata{{ApplicantIdentity: "0xapplicant", ApplicationID: uuid.New(), Applied: true}}
		postingRepo.On("GetByID", mock.Anything, posting.ID).Return(posting, nil)
		appRepo.On("FetchMetadataByPosting", mock.Anything, posting.ID, domain.ReceivedApplicationsPageSize, 0).Return(entries, nil)

		got, err := uc.GetReceivedApplications(context.Background(), "0xcompany", posting.ID, 0)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.True(t, got[0].Applied)
	})

	t.Run("Should hide applicant identities from non-owners", func(t *testing.T) {
		postingRepo := new(MockJobPostingRepo)
		appRepo := new(MockJobApplicationRepo)
		uc := usecase.NewJobPostingUsecase(postingRepo, appRepo, new(MockEventBus), testFees)

		posting := openPosting("0xcompany")
		postingRepo.On("GetByID", mock.Anything, posting.ID).Return(posting, nil)

		_, err := uc.GetReceivedApplications(context.Background(), "0xother", posting.ID, 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only owner is allowed to perform the action.")
		appRepo.AssertNotCalled(t, "FetchMetadataByPosting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetReceivedApplication(t *testing.T) {
	t.Run("Should allow an applicant to look up their own entry", func(t *testing.T) {
		postingRepo := new(MockJobPostingRepo)
		appRepo := new(MockJobApplicationRepo)
		uc := usecase.NewJobPostingUsecase(postingRepo, appRepo, new(MockEventBus), testFees)

		posting := openPosting("0xcompany")
		postingRepo.On("GetByID", mock.Anything, posting.ID).Return(posting, nil)
		appRepo.On("GetMetadata", mock.Anything, posting.ID, "0xapplicant").
			Return(&domain.ApplicationMetadata{ApplicantIdentity: "0xapplicant", Applied: true}, nil)

		meta, err := uc.GetReceivedApplication(context.Background(), "0xapplicant", posting.ID, "0xapplicant")
		assert.NoError(t, err)
		assert.Equal(t, "0xapplicant", meta.ApplicantIdentity)
	})

	t.Run("Should not let an applicant look up someone else", func(t *testing.T) {
		postingRepo := new(MockJobPostingRepo)
		uc := usecase.NewJobPostingUsecase(postingRepo, new(MockJobApplicationRepo), new(MockEventBus), testFees)

		posting := openPosting("0xcompany")
		postingRepo.On("GetByID", mock.Anything, posting.ID).Return(posting, nil)

		_, err := uc.GetReceivedApplication(context.Background(), "0xapplicant", posting.ID, "0xother")
		assert.Error(t, err)
	})
}

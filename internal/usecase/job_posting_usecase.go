package usecase

import (
	"context"

	"decentralhire-backend/internal/domain"
	"decentralhire-backend/pkg/apperror"

	"github.com/google/uuid"
)

type jobPostingUsecase struct {
	postingRepo domain.JobPostingRepository
	appRepo     domain.JobApplicationRepository
	bus         domain.EventBus
	fees        domain.FeePolicy
}

// NewJobPostingUsecase creates the job posting usecase
func NewJobPostingUsecase(
	postingRepo domain.JobPostingRepository,
	appRepo domain.JobApplicationRepository,
	bus domain.EventBus,
	fees domain.FeePolicy,
) domain.JobPostingUsecase {
	return &jobPostingUsecase{
		postingRepo: postingRepo,
		appRepo:     appRepo,
		bus:         bus,
		fees:        fees,
	}
}

// GetPosting resolves a posting reference; pure read, unrestricted
func (uc *jobPostingUsecase) GetPosting(ctx context.Context, id uuid.UUID) (*domain.JobPosting, error) {
	return uc.posting(ctx, id)
}

// ApplyForJob submits the caller's application to the posting. Fee-gated;
// one application per applicant per posting. Capacity is gated at hire
// time, so applying only fails on capacity once the posting is fully hired.
func (uc *jobPostingUsecase) ApplyForJob(ctx context.Context, caller string, postingID uuid.UUID, resumeCID string, paymentAmount int64) (*domain.JobApplication, error) {
	// 1. Resume is required to submit an application
	if resumeCID == "" {
		return nil, apperror.BadRequest("Resume content identifier is required")
	}

	// 2. Posting must exist and still have open capacity
	posting, err := uc.posting(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if !posting.IsActive() {
		return nil, apperror.Conflict("Job posting has no remaining hiring capacity")
	}

	// 3. Fee gate before any state is touched
	if paymentAmount < uc.fees.ApplicationFee {
		return nil, errInsufficientPayment()
	}

	// 4. Duplicate check against the posting's applicant index
	if _, err := uc.appRepo.GetMetadata(ctx, postingID, caller); err == nil {
		return nil, errAlreadyApplied()
	} else if err != domain.ErrNotFound {
		return nil, apperror.Internal(err)
	}

	// 5. Create the application; the repository writes the application, the
	// index entry, the fee ledger row and the event atomically
	app := &domain.JobApplication{
		ID:                uuid.New(),
		PostingID:         posting.ID,
		ApplicantIdentity: caller,
		ResumeCID:         resumeCID,
		Status:            domain.StatusInProgress,
	}

	fee := domain.NewFeeLedgerEntry(caller, uc.fees.TreasuryIdentity, app.ID, domain.FeePurposeJobApplication, paymentAmount)
	event := domain.NewEvent(domain.EventJobApplicationCreated, caller, app.ID, map[string]any{
		"posting_id": posting.ID,
		"resume_cid": resumeCID,
	})

	if err := uc.appRepo.Create(ctx, app, fee, event); err != nil {
		// Backstop for a concurrent duplicate that slipped past the pre-check
		if err == domain.ErrAlreadyApplied {
			return nil, errAlreadyApplied()
		}
		return nil, apperror.Internal(err)
	}
	publishEvent(ctx, uc.bus, event)

	return app, nil
}

// GetReceivedApplications returns a bounded page of the posting's applicant
// index. Restricted to the posting owner: applicant identities are not a
// public read.
func (uc *jobPostingUsecase) GetReceivedApplications(ctx context.Context, caller string, postingID uuid.UUID, offset int) ([]domain.ApplicationMetadata, error) {
	posting, err := uc.posting(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if !posting.IsOwnedBy(caller) {
		return nil, errOwnerOnly()
	}
	if offset < 0 {
		offset = 0
	}
	return uc.appRepo.FetchMetadataByPosting(ctx, postingID, domain.ReceivedApplicationsPageSize, offset)
}

// GetReceivedApplication looks up one applicant's index entry. The posting
// owner may look up anyone; an applicant may look up only themselves.
func (uc *jobPostingUsecase) GetReceivedApplication(ctx context.Context, caller string, postingID uuid.UUID, applicantIdentity string) (*domain.ApplicationMetadata, error) {
	posting, err := uc.posting(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if !posting.IsOwnedBy(caller) && caller != applicantIdentity {
		return nil, errOwnerOnly()
	}

	meta, err := uc.appRepo.GetMetadata(ctx, postingID, applicantIdentity)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return meta, nil
}

func (uc *jobPostingUsecase) posting(ctx context.Context, id uuid.UUID) (*domain.JobPosting, error) {
	posting, err := uc.postingRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job posting not found")
		}
		return nil, apperror.Internal(err)
	}
	return posting, nil
}

func errAlreadyApplied() *apperror.AppError {
	return apperror.Conflict("You have already applied to this job posting")
}

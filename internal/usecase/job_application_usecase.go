package usecase

import (
	"context"

	"decentralhire-backend/internal/domain"
	"decentralhire-backend/pkg/apperror"

	"github.com/google/uuid"
)

type jobApplicationUsecase struct {
	appRepo     domain.JobApplicationRepository
	postingRepo domain.JobPostingRepository
	bus         domain.EventBus
}

// NewJobApplicationUsecase creates the application lifecycle usecase
func NewJobApplicationUsecase(
	appRepo domain.JobApplicationRepository,
	postingRepo domain.JobPostingRepository,
	bus domain.EventBus,
) domain.JobApplicationUsecase {
	return &jobApplicationUsecase{
		appRepo:     appRepo,
		postingRepo: postingRepo,
		bus:         bus,
	}
}

// SendOffer moves InProgress → OfferSent; only the posting owner may invoke
func (uc *jobApplicationUsecase) SendOffer(ctx context.Context, caller string, applicationID uuid.UUID) error {
	app, err := uc.application(ctx, applicationID)
	if err != nil {
		return err
	}
	if err := uc.requirePostingOwner(ctx, caller, app.PostingID); err != nil {
		return err
	}
	return uc.transition(ctx, caller, app, domain.StatusOfferSent, domain.EventOfferSent)
}

// AcceptOffer moves OfferSent → OfferAccepted; only the applicant may invoke
func (uc *jobApplicationUsecase) AcceptOffer(ctx context.Context, caller string, applicationID uuid.UUID) error {
	app, err := uc.application(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.ApplicantIdentity != caller {
		return errApplicantOnly()
	}
	return uc.transition(ctx, caller, app, domain.StatusOfferAccepted, domain.EventOfferAccepted)
}

// DeclineOffer moves OfferSent → OfferDeclined (terminal); applicant only
func (uc *jobApplicationUsecase) DeclineOffer(ctx context.Context, caller string, applicationID uuid.UUID) error {
	app, err := uc.application(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.ApplicantIdentity != caller {
		return errApplicantOnly()
	}
	return uc.transition(ctx, caller, app, domain.StatusOfferDeclined, domain.EventOfferDeclined)
}

// ConfirmHire moves OfferAccepted → Hired (terminal) and increments the
// posting's hired count in the same transaction; posting owner only
func (uc *jobApplicationUsecase) ConfirmHire(ctx context.Context, caller string, applicationID uuid.UUID) error {
	app, err := uc.application(ctx, applicationID)
	if err != nil {
		return err
	}
	if err := uc.requirePostingOwner(ctx, caller, app.PostingID); err != nil {
		return err
	}
	if !app.Status.CanTransitionTo(domain.StatusHired) {
		return errInvalidTransition()
	}

	event := domain.NewEvent(domain.EventHired, caller, app.ID, map[string]any{
		"applicant_identity": app.ApplicantIdentity,
		"posting_id":         app.PostingID,
	})

	if err := uc.appRepo.Hire(ctx, app.ID, app.PostingID, event); err != nil {
		switch err {
		case domain.ErrCapacityExceeded:
			return apperror.Conflict("Job posting has no remaining hiring capacity")
		case domain.ErrInvalidStateTransition:
			return errInvalidTransition()
		}
		return apperror.Internal(err)
	}
	publishEvent(ctx, uc.bus, event)

	return nil
}

// GetApplication resolves an application reference; pure read, unrestricted
func (uc *jobApplicationUsecase) GetApplication(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error) {
	return uc.application(ctx, id)
}

// transition applies one status move with its event, compare-and-set on the
// current status so a lost race cannot double-apply.
func (uc *jobApplicationUsecase) transition(ctx context.Context, caller string, app *domain.JobApplication, next domain.ApplicationStatus, eventName string) error {
	from := app.Status
	if err := app.Transition(next); err != nil {
		return errInvalidTransition()
	}

	event := domain.NewEvent(eventName, caller, app.ID, map[string]any{
		"applicant_identity": app.ApplicantIdentity,
		"posting_id":         app.PostingID,
	})

	if err := uc.appRepo.UpdateStatus(ctx, app.ID, from, next, event); err != nil {
		if err == domain.ErrInvalidStateTransition {
			return errInvalidTransition()
		}
		return apperror.Internal(err)
	}
	publishEvent(ctx, uc.bus, event)

	return nil
}

func (uc *jobApplicationUsecase) application(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error) {
	app, err := uc.appRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// requirePostingOwner checks the caller against the owner identity the
// posting copied from its profile at creation time.
func (uc *jobApplicationUsecase) requirePostingOwner(ctx context.Context, caller string, postingID uuid.UUID) error {
	posting, err := uc.postingRepo.GetByID(ctx, postingID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job posting not found")
		}
		return apperror.Internal(err)
	}
	if !posting.IsOwnedBy(caller) {
		return errOwnerOnly()
	}
	return nil
}

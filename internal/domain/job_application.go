package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the lifecycle state of one application.
type ApplicationStatus string

// Lifecycle: InProgress → OfferSent → {OfferAccepted, OfferDeclined};
// OfferAccepted → Hired. OfferDeclined and Hired are terminal.
const (
	StatusInProgress    ApplicationStatus = "InProgress"
	StatusOfferSent     ApplicationStatus = "OfferSent"
	StatusOfferAccepted ApplicationStatus = "OfferAccepted"
	StatusOfferDeclined ApplicationStatus = "OfferDeclined"
	StatusHired         ApplicationStatus = "Hired"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusInProgress:    {StatusOfferSent},
	StatusOfferSent:     {StatusOfferAccepted, StatusOfferDeclined},
	StatusOfferAccepted: {StatusHired},
}

// CanTransitionTo reports whether next is a valid successor of s.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is valid from s.
func (s ApplicationStatus) IsTerminal() bool {
	return len(applicationTransitions[s]) == 0
}

// JobApplication is one candidate's application to one posting. Applicant,
// posting reference and resume are immutable; only Status moves.
type JobApplication struct {
	ID                uuid.UUID         `json:"id"`
	PostingID         uuid.UUID         `json:"posting_id"`
	ApplicantIdentity string            `json:"applicant_identity"`
	ResumeCID         string            `json:"resume_cid"`
	Status            ApplicationStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// Transition moves the application to next, or fails with
// ErrInvalidStateTransition leaving the status unchanged.
func (a *JobApplication) Transition(next ApplicationStatus) error {
	if !a.Status.CanTransitionTo(next) {
		return ErrInvalidStateTransition
	}
	a.Status = next
	return nil
}

// JobApplicationRepository defines storage operations. Create persists the
// application, its metadata index entry, the fee-ledger entry and the
// creation event in one transaction; a duplicate applicant maps to
// ErrAlreadyApplied. UpdateStatus is a compare-and-set on the stored status
// so a transition raced by an earlier operation fails with
// ErrInvalidStateTransition instead of overwriting. Hire additionally
// increments the posting's hired count, failing with ErrCapacityExceeded
// when the quota is already met.
type JobApplicationRepository interface {
	Create(ctx context.Context, app *JobApplication, fee *FeeLedgerEntry, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*JobApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to ApplicationStatus, event *Event) error
	Hire(ctx context.Context, id, postingID uuid.UUID, event *Event) error
	FetchMetadataByPosting(ctx context.Context, postingID uuid.UUID, limit, offset int) ([]ApplicationMetadata, error)
	GetMetadata(ctx context.Context, postingID uuid.UUID, applicantIdentity string) (*ApplicationMetadata, error)
}

// JobApplicationUsecase encodes the state machine, one method per
// role-gated transition.
type JobApplicationUsecase interface {
	// Company side
	SendOffer(ctx context.Context, caller string, applicationID uuid.UUID) error
	ConfirmHire(ctx context.Context, caller string, applicationID uuid.UUID) error
	// Applicant side
	AcceptOffer(ctx context.Context, caller string, applicationID uuid.UUID) error
	DeclineOffer(ctx context.Context, caller string, applicationID uuid.UUID) error
	// Unrestricted reads
	GetApplication(ctx context.Context, id uuid.UUID) (*JobApplication, error)
}

package usecase

import (
	"context"

	"decentralhire-backend/internal/domain"
	"decentralhire-backend/pkg/apperror"
	"decentralhire-backend/pkg/logger"
)

// Authorization failure messages, kept identical across every owner/applicant
// gate so callers cannot probe which check tripped.
const (
	ownerOnlyMessage     = "Only owner is allowed to perform the action."
	applicantOnlyMessage = "Only the applicant is allowed to perform the action."
)

func errOwnerOnly() *apperror.AppError {
	return apperror.Forbidden(ownerOnlyMessage)
}

func errApplicantOnly() *apperror.AppError {
	return apperror.Forbidden(applicantOnlyMessage)
}

func errInsufficientPayment() *apperror.AppError {
	return apperror.PaymentRequired("Attached payment is below the required fee")
}

func errInvalidTransition() *apperror.AppError {
	return apperror.Conflict("Invalid application status transition")
}

// publishEvent forwards a committed event to the bus. The event already sits
// in the outbox table, so a publish failure is downgraded to a warning
// instead of failing the operation that committed.
func publishEvent(ctx context.Context, bus domain.EventBus, event *domain.Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, event); err != nil && logger.Log != nil {
		logger.Log.Warn("event publish failed", "event", event.Name, "error", err)
	}
}

package domain

import "errors"

// Sentinel errors shared across repositories and usecases. Usecases wrap
// these into HTTP-coded apperrors at the boundary.
var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("caller is not the required owner")
	ErrInsufficientPayment    = errors.New("attached payment below required fee")
	ErrAlreadyApplied         = errors.New("applicant already applied to this posting")
	ErrCapacityExceeded       = errors.New("posting hiring capacity exhausted")
	ErrInvalidStateTransition = errors.New("invalid application status transition")
)

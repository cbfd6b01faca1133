package domain_test

import (
	"testing"

	"decentralhire-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusTransitions(t *testing.T) {
	all := []domain.ApplicationStatus{
		domain.StatusInProgress,
		domain.StatusOfferSent,
		domain.StatusOfferAccepted,
		domain.StatusOfferDeclined,
		domain.StatusHired,
	}

	valid := map[domain.ApplicationStatus][]domain.ApplicationStatus{
		domain.StatusInProgress:    {domain.StatusOfferSent},
		domain.StatusOfferSent:     {domain.StatusOfferAccepted, domain.StatusOfferDeclined},
		domain.StatusOfferAccepted: {domain.StatusHired},
		domain.StatusOfferDeclined: {},
		domain.StatusHired:         {},
	}

	for from, allowed := range valid {
		allowedSet := map[domain.ApplicationStatus]bool{}
		for _, s := range allowed {
			allowedSet[s] = true
		}
		for _, to := range all {
			got := from.CanTransitionTo(to)
			assert.Equal(t, allowedSet[to], got, "transition %s -> %s", from, to)
		}
	}
}

func TestApplicationStatusTerminal(t *testing.T) {
	assert.False(t, domain.StatusInProgress.IsTerminal())
	assert.False(t, domain.StatusOfferSent.IsTerminal())
	assert.False(t, domain.StatusOfferAccepted.IsTerminal())
	assert.True(t, domain.StatusOfferDeclined.IsTerminal())
	assert.True(t, domain.StatusHired.IsTerminal())
}

func TestJobApplicationTransition(t *testing.T) {
	t.Run("Should follow the full hiring path", func(t *testing.T) {
		app := &domain.JobApplication{Status: domain.StatusInProgress}

		assert.NoError(t, app.Transition(domain.StatusOfferSent))
		assert.NoError(t, app.Transition(domain.StatusOfferAccepted))
		assert.NoError(t, app.Transition(domain.StatusHired))
		assert.Equal(t, domain.StatusHired, app.Status)
	})

	t.Run("Should reject skipping a predecessor state", func(t *testing.T) {
		app := &domain.JobApplication{Status: domain.StatusInProgress}

		err := app.Transition(domain.StatusHired)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.Equal(t, domain.StatusInProgress, app.Status)
	})

	t.Run("Should reject any transition out of a terminal state", func(t *testing.T) {
		app := &domain.JobApplication{Status: domain.StatusOfferDeclined}

		err := app.Transition(domain.StatusOfferAccepted)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.Equal(t, domain.StatusOfferDeclined, app.Status)
	})

	t.Run("Should reject re-sending an offer after decline", func(t *testing.T) {
		app := &domain.JobApplication{Status: domain.StatusInProgress}
		assert.NoError(t, app.Transition(domain.StatusOfferSent))
		assert.NoError(t, app.Transition(domain.StatusOfferDeclined))

		err := app.Transition(domain.StatusOfferSent)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.Equal(t, domain.StatusOfferDeclined, app.Status)
	})
}

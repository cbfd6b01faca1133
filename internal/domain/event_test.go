package domain_test

import (
	"testing"

	"decentralhire-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// The name field is what external subscribers key on, so the literal values
// are a wire contract and must not drift with internal renames.
func TestEventNamesAreStableWireValues(t *testing.T) {
	assert.Equal(t, "CompanyProfileCreated", domain.EventCompanyProfileCreated)
	assert.Equal(t, "JobPostingCreated", domain.EventJobPostingCreated)
	assert.Equal(t, "JobApplicationCreated", domain.EventJobApplicationCreated)
	assert.Equal(t, "OfferSentEvent", domain.EventOfferSent)
	assert.Equal(t, "OfferAcceptedEvent", domain.EventOfferAccepted)
	assert.Equal(t, "OfferDeclinedEvent", domain.EventOfferDeclined)
	assert.Equal(t, "HiredEvent", domain.EventHired)
}

func TestNewEvent(t *testing.T) {
	entityID := uuid.New()

	e := domain.NewEvent(domain.EventHired, "0xcompany", entityID, map[string]any{
		"applicant_identity": "0xapplicant",
	})

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, "HiredEvent", e.Name)
	assert.Equal(t, "0xcompany", e.ActorIdentity)
	assert.Equal(t, entityID, e.EntityID)
	assert.Equal(t, "0xapplicant", e.Payload["applicant_identity"])
	assert.False(t, e.CreatedAt.IsZero())
}

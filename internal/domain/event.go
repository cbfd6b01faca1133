package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event names observable by external consumers. The values are the wire
// contract indexers key on; the lifecycle names carry an Event suffix the
// creation names do not.
const (
	EventCompanyProfileCreated = "CompanyProfileCreated"
	EventJobPostingCreated     = "JobPostingCreated"
	EventJobApplicationCreated = "JobApplicationCreated"
	EventOfferSent             = "OfferSentEvent"
	EventOfferAccepted         = "OfferAcceptedEvent"
	EventOfferDeclined         = "OfferDeclinedEvent"
	EventHired                 = "HiredEvent"
)

// Event is a domain event. Every event carries the acting identity and the
// reference of the entity it concerns; payload holds event-specific fields.
type Event struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	ActorIdentity string         `json:"actor_identity"`
	EntityID      uuid.UUID      `json:"entity_id"`
	Payload       map[string]any `json:"payload,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// NewEvent builds an event with a fresh reference and timestamp.
func NewEvent(name, actor string, entityID uuid.UUID, payload map[string]any) *Event {
	return &Event{
		ID:            uuid.New(),
		Name:          name,
		ActorIdentity: actor,
		EntityID:      entityID,
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
	}
}

// EventBus is the single process-wide sink every entity emits through.
// Implementations are pure pass-through; no business logic.
type EventBus interface {
	Publish(ctx context.Context, event *Event) error
}

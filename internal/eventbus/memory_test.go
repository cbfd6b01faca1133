package eventbus_test

import (
	"context"
	"testing"

	"decentralhire-backend/internal/domain"
	"decentralhire-backend/internal/eventbus"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMemoryBusDeliversInOrder(t *testing.T) {
	bus := eventbus.NewMemoryBus()
	sub := bus.Subscribe(4)

	first := domain.NewEvent(domain.EventCompanyProfileCreated, "0xowner", uuid.New(), nil)
	second := domain.NewEvent(domain.EventJobPostingCreated, "0xowner", uuid.New(), nil)

	assert.NoError(t, bus.Publish(context.Background(), first))
	assert.NoError(t, bus.Publish(context.Background(), second))

	assert.Equal(t, first.ID, (<-sub).ID)
	assert.Equal(t, second.ID, (<-sub).ID)
}

func TestMemoryBusDropsWhenSubscriberIsFull(t *testing.T) {
	bus := eventbus.NewMemoryBus()
	sub := bus.Subscribe(1)

	for i := 0; i < 3; i++ {
		assert.NoError(t, bus.Publish(context.Background(), domain.NewEvent(domain.EventHired, "0xco", uuid.New(), nil)))
	}

	// Only the first event fits; publishing never blocked.
	<-sub
	select {
	case e := <-sub:
		t.Fatalf("expected empty channel, got %s", e.Name)
	default:
	}
}

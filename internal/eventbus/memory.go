package eventbus

import (
	"context"
	"sync"

	"decentralhire-backend/internal/domain"
)

// MemoryBus is an in-process event sink used when Redis is not configured
// and as a test double. Subscribers receive events synchronously in
// publish order.
type MemoryBus struct {
	mu          sync.RWMutex
	subscribers []chan *domain.Event
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{}
}

// Subscribe returns a buffered channel receiving every subsequent event.
func (b *MemoryBus) Subscribe(buffer int) <-chan *domain.Event {
	ch := make(chan *domain.Event, buffer)
	b.mu.Lock()
	b.subscribers = append(b.subscribers, ch)
	b.mu.Unlock()
	return ch
}

func (b *MemoryBus) Publish(_ context.Context, event *domain.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// Slow subscriber: drop rather than block the publishing operation.
		}
	}
	return nil
}

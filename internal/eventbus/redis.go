package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"decentralhire-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisBus publishes domain events on a single Redis pub/sub channel so
// off-process indexers subscribe to one address for the whole entity tree.
type RedisBus struct {
	client  *redis.Client
	channel string
}

func NewRedisBus(client *redis.Client, channel string) *RedisBus {
	return &RedisBus{client: client, channel: channel}
}

func (b *RedisBus) Publish(ctx context.Context, event *domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("eventbus: marshal %s: %w", event.Name, err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("eventbus: publish %s: %w", event.Name, err)
	}
	return nil
}

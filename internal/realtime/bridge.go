package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// Channel carries recipe change events between server instances.
const Channel = "recipes:changes"

// RedisBridge publishes change events to a Redis channel and relays events
// from that channel into the local hub, so a mutation on any instance reaches
// the clients of every instance.
type RedisBridge struct {
	rdb *redis.Client
	hub *Hub
}

// NewRedisBridge creates a bridge between the Redis channel and the hub.
func NewRedisBridge(rdb *redis.Client, hub *Hub) *RedisBridge {
	return &RedisBridge{rdb: rdb, hub: hub}
}

// Publish implements Publisher by pushing the event onto the Redis channel.
// Delivery back to local clients happens through Run like any other event.
func (b *RedisBridge) Publish(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[RedisBridge] failed to marshal event: %v", err)
		return
	}
	if err := b.rdb.Publish(context.Background(), Channel, data).Err(); err != nil {
		log.Printf("[RedisBridge] failed to publish event: %v", err)
	}
}

// Run subscribes to the Redis channel and broadcasts every received event
// into the hub. It blocks until the context is cancelled.
func (b *RedisBridge) Run(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, Channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("[RedisBridge] failed to unmarshal event: %v", err)
				continue
			}
			b.hub.Broadcast(event)
		case <-ctx.Done():
			return
		}
	}
}

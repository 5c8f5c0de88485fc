package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const defaultChannelPrefix = "littlethings:slots:"

// RedisBus publishes slot updates through Redis pub/sub so every API instance
// sees them, and relays what it receives into a local Hub for its own
// websocket clients.
type RedisBus struct {
	rdb    *redis.Client
	hub    *Hub
	prefix string
}

func NewRedisBus(rdb *redis.Client, hub *Hub, prefix string) *RedisBus {
	if prefix == "" {
		prefix = defaultChannelPrefix
	}
	return &RedisBus{rdb: rdb, hub: hub, prefix: prefix}
}

func (b *RedisBus) Publish(ctx context.Context, activityName string, ev slot.UpdatedEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode slot update")
	}
	if err := b.rdb.Publish(ctx, b.prefix+activity.ChannelKey(activityName), payload).Err(); err != nil {
		return errs.Wrap(err, "failed to publish slot update")
	}
	return nil
}

func (b *RedisBus) Subscribe(activityName string) shared.Subscription {
	return b.hub.Subscribe(activityName)
}

// Run relays Redis messages into the hub until ctx is cancelled.
func (b *RedisBus) Run(ctx context.Context) error {
	ps := b.rdb.PSubscribe(ctx, b.prefix+"*")
	defer func() {
		if err := ps.Close(); err != nil {
			slog.Warn("failed to close redis subscription", slog.String("error", err.Error()))
		}
	}()

	if _, err := ps.Receive(ctx); err != nil {
		return errs.Wrap(err, "failed to subscribe to slot updates")
	}

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.relay(msg)
		}
	}
}

func (b *RedisBus) relay(msg *redis.Message) {
	var ev slot.UpdatedEvent
	if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
		slog.Warn("discarding malformed slot update",
			slog.String("channel", msg.Channel),
			slog.String("error", err.Error()))
		return
	}
	b.hub.Deliver(strings.TrimPrefix(msg.Channel, b.prefix), ev)
}

func (b *RedisBus) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

package realtime

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Broadcaster publishes event notices to the shared channel. Delivery is
// at-most-once with no persistence: a disconnected client simply misses the
// event until its next full fetch.
type Broadcaster interface {
	Publish(ctx context.Context, event string, data any) error
}

// RedisBroadcaster publishes over Redis pub/sub. The Hub on each server
// process subscribes to the same channel and relays frames to its websocket
// clients, so events reach clients on every instance.
type RedisBroadcaster struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

func NewRedisBroadcaster(client *redis.Client, channel string, logger *slog.Logger) *RedisBroadcaster {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisBroadcaster{client: client, channel: channel, logger: logger}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, event string, data any) error {
	frame, err := Encode(event, data)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, b.channel, frame).Err(); err != nil {
		return err
	}
	b.logger.Debug("event published", "event", event, "channel", b.channel)
	return nil
}

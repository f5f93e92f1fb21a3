package broadcast

import "context"

// Broadcaster is the ephemeral, topic-per-correlation-ID publish/subscribe
// channel that delivers decision events to live streaming clients.
// Publishing to a topic with no subscribers is a no-op; nothing is queued
// for subscribers that arrive later.
type Broadcaster interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Subscribe(ctx context.Context, topic string) (Subscription, error)
}

// Subscription is a live registration on one topic. Messages never closes
// on its own; it ends only when Close is called (the streaming connection
// went away).
type Subscription interface {
	Messages() <-chan []byte
	Close() error
}

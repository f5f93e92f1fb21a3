package broadcast

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisBroadcaster implements Broadcaster on Redis pub/sub. Redis gives the
// at-most-once live delivery the contract asks for: messages published
// while nobody listens are simply dropped.
type RedisBroadcaster struct {
	client *redis.Client
}

func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, topic string, payload []byte) error {
	return b.client.Publish(ctx, topic, payload).Err()
}

func (b *RedisBroadcaster) Subscribe(ctx context.Context, topic string) (Subscription, error) {
	pubsub := b.client.Subscribe(ctx, topic)
	// Force the SUBSCRIBE round trip so a failed connection surfaces here
	// instead of as a silent, empty stream.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	sub := &redisSubscription{
		pubsub:   pubsub,
		messages: make(chan []byte),
		closed:   make(chan struct{}),
	}
	go sub.pump()
	return sub, nil
}

type redisSubscription struct {
	pubsub   *redis.PubSub
	messages chan []byte
	closed   chan struct{}
	once     sync.Once
}

func (s *redisSubscription) pump() {
	defer close(s.messages)
	for msg := range s.pubsub.Channel() {
		select {
		case s.messages <- []byte(msg.Payload):
		case <-s.closed:
			return
		}
	}
}

func (s *redisSubscription) Messages() <-chan []byte {
	return s.messages
}

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.closed)
		err = s.pubsub.Close()
	})
	return err
}

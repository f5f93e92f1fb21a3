package broadcast

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

const subscriberBuffer = 16

// Hub is an in-process Broadcaster with the same contract as the Redis
// implementation. Tests and single-process runs use it in place of Redis.
type Hub struct {
	mu     sync.Mutex
	topics map[string]map[*hubSubscription]struct{}
}

func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[*hubSubscription]struct{})}
}

// Publish delivers payload to every current subscriber of the topic. A
// subscriber that cannot keep up loses the message rather than blocking
// the publisher.
func (h *Hub) Publish(ctx context.Context, topic string, payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.topics[topic] {
		select {
		case sub.messages <- payload:
		default:
			logrus.Warnf("dropping broadcast message on %s: slow subscriber", topic)
		}
	}
	return nil
}

func (h *Hub) Subscribe(ctx context.Context, topic string) (Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &hubSubscription{
		hub:      h,
		topic:    topic,
		messages: make(chan []byte, subscriberBuffer),
	}
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*hubSubscription]struct{})
	}
	h.topics[topic][sub] = struct{}{}
	return sub, nil
}

type hubSubscription struct {
	hub      *Hub
	topic    string
	messages chan []byte
	once     sync.Once
}

func (s *hubSubscription) Messages() <-chan []byte {
	return s.messages
}

func (s *hubSubscription) Close() error {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		delete(s.hub.topics[s.topic], s)
		if len(s.hub.topics[s.topic]) == 0 {
			delete(s.hub.topics, s.topic)
		}
	})
	return nil
}

package publisher_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rishab260/loan-app-poc/config"
	"github.com/Rishab260/loan-app-poc/internal/publisher"
	"github.com/stretchr/testify/assert"
)

type appendCall struct {
	topic string
	key   string
	value string
}

type scriptedLog struct {
	failures int
	calls    []appendCall
}

func (s *scriptedLog) Append(ctx context.Context, topic string, key, value []byte) error {
	s.calls = append(s.calls, appendCall{topic: topic, key: string(key), value: string(value)})
	if s.failures > 0 {
		s.failures--
		return errors.New("broker unavailable")
	}
	return nil
}

func fastRetry(attempts int) config.RetryConfig {
	return config.RetryConfig{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}
}

func TestPublish_MarshalsAndKeysMessage(t *testing.T) {
	log := &scriptedLog{}
	pub := publisher.NewEventPublisher(log, fastRetry(3))

	err := pub.Publish(context.Background(), "loans.status", "c1", map[string]string{"id": "c1", "status": "approved"})

	assert.NoError(t, err)
	assert.Len(t, log.calls, 1)
	assert.Equal(t, "loans.status", log.calls[0].topic)
	assert.Equal(t, "c1", log.calls[0].key)
	assert.JSONEq(t, `{"id":"c1","status":"approved"}`, log.calls[0].value)
}

func TestPublish_RetriesUntilSuccess(t *testing.T) {
	log := &scriptedLog{failures: 2}
	pub := publisher.NewEventPublisher(log, fastRetry(5))

	err := pub.Publish(context.Background(), "loans.requests", "c1", map[string]string{"id": "c1"})

	assert.NoError(t, err)
	assert.Len(t, log.calls, 3)
}

func TestPublish_FailsAfterMaxAttempts(t *testing.T) {
	log := &scriptedLog{failures: 10}
	pub := publisher.NewEventPublisher(log, fastRetry(3))

	err := pub.Publish(context.Background(), "loans.requests", "c1", map[string]string{"id": "c1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Len(t, log.calls, 3)
}

func TestPublish_StopsOnCancelledContext(t *testing.T) {
	log := &scriptedLog{failures: 10}
	pub := publisher.NewEventPublisher(log, fastRetry(5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pub.Publish(ctx, "loans.requests", "c1", map[string]string{"id": "c1"})

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, log.calls, 1)
}

func TestPublish_MarshalErrorDoesNotTouchLog(t *testing.T) {
	log := &scriptedLog{}
	pub := publisher.NewEventPublisher(log, fastRetry(3))

	err := pub.Publish(context.Background(), "loans.requests", "c1", func() {})

	assert.Error(t, err)
	assert.Empty(t, log.calls)
}

package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Rishab260/loan-app-poc/config"
	"github.com/sirupsen/logrus"
)

// Log is the narrow slice of the event bus the publisher needs.
type Log interface {
	Append(ctx context.Context, topic string, key, value []byte) error
}

// EventPublisher appends JSON-encoded events to the partitioned log with
// exponential backoff retry on failed appends. The partition key keeps all
// events of one correlation ID on one partition, which is what preserves
// their order downstream.
type EventPublisher struct {
	Log         Log
	RetryConfig config.RetryConfig
}

// NewEventPublisher creates an EventPublisher over the given log. Zero
// retry configuration values fall back to defaults:
//   - MaxAttempts: 5
//   - BaseDelay: 100ms
//   - MaxDelay: 10s
func NewEventPublisher(log Log, retryConfig config.RetryConfig) *EventPublisher {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}
	return &EventPublisher{
		Log:         log,
		RetryConfig: retryConfig,
	}
}

// Publish marshals the message to JSON and appends it to the topic under
// the given partition key, retrying on failure. Returns an error if
// marshaling fails or every attempt is rejected.
func (p *EventPublisher) Publish(ctx context.Context, topic, key string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}
	return p.appendWithRetry(ctx, topic, key, data)
}

func (p *EventPublisher) appendWithRetry(ctx context.Context, topic, key string, data []byte) error {
	var lastErr error

	for attempt := 0; attempt < p.RetryConfig.MaxAttempts; attempt++ {
		err := p.Log.Append(ctx, topic, []byte(key), data)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("message published to topic '%s' after %d attempts", topic, attempt+1)
			}
			return nil
		}

		lastErr = err

		if attempt == p.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := calculateBackoff(p.RetryConfig, attempt)
		logrus.Warnf("publish retry %d/%d for topic '%s' after %v: %v",
			attempt+1, p.RetryConfig.MaxAttempts, topic, delay, err)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

// calculateBackoff computes the delay before the next retry attempt:
// 2^attempt * BaseDelay capped at MaxDelay, with optional ±15% jitter.
func calculateBackoff(cfg config.RetryConfig, attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * cfg.BaseDelay

	if delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}

	if cfg.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

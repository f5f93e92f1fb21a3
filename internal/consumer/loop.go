package consumer

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/Rishab260/loan-app-poc/config"
	"github.com/Rishab260/loan-app-poc/internal/eventbus"
	"github.com/Rishab260/loan-app-poc/internal/metrics"
	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/sirupsen/logrus"
)

// Handler processes one record. Delivery is at least once: a record may be
// handed to the handler again after a crash or re-poll, so handlers must
// tolerate duplicates.
type Handler func(ctx context.Context, rec eventbus.Record) error

// DLQ receives records whose handler kept failing. Publishing to it is
// best effort.
type DLQ interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

// Options tune a Loop. Zero values fall back to defaults.
type Options struct {
	BatchSize     int
	PollInterval  time.Duration
	EmptyInterval time.Duration
	Retry         config.RetryConfig
	DLQ           DLQ
	DLQTopic      string
}

// Loop continuously delivers every record appended to one topic to the
// handler, partition by partition, tolerating topology changes and
// transient transport errors. One Loop instance exclusively owns every
// cursor it holds; it must never run concurrently with itself.
type Loop struct {
	log     eventbus.Log
	topic   string
	handler Handler
	opts    Options

	cursors    map[int]eventbus.Cursor
	throttled  map[int]int       // consecutive throttle errors per partition
	nextPoll   map[int]time.Time // earliest next attempt per throttled partition
	rediscover bool

	done chan struct{}
}

func New(log eventbus.Log, topic string, handler Handler, opts Options) *Loop {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Second
	}
	if opts.EmptyInterval <= 0 {
		opts.EmptyInterval = 5 * time.Second
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry.MaxAttempts = 5
	}
	if opts.Retry.BaseDelay == 0 {
		opts.Retry.BaseDelay = 100 * time.Millisecond
	}
	if opts.Retry.MaxDelay == 0 {
		opts.Retry.MaxDelay = 10 * time.Second
	}
	return &Loop{
		log:       log,
		topic:     topic,
		handler:   handler,
		opts:      opts,
		cursors:   make(map[int]eventbus.Cursor),
		throttled: make(map[int]int),
		nextPoll:  make(map[int]time.Time),
		done:      make(chan struct{}),
	}
}

// Start runs the loop in its own goroutine until ctx is cancelled.
func (l *Loop) Start(ctx context.Context) {
	go l.Run(ctx)
}

// Done is closed once Run has returned and all cursors are released. The
// owning process cancels the context and then waits on Done with a bounded
// timeout.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run polls every partition of the topic in a fixed-interval cycle and
// returns when ctx is cancelled. Cancellation is checked at each partition
// iteration and at each cycle boundary, so no poll or handler invocation
// starts after it is observed.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)
	defer l.closeCursors()

	for {
		if ctx.Err() != nil {
			return
		}

		if len(l.cursors) == 0 || l.rediscover {
			if err := l.discover(ctx); err != nil {
				logrus.Warnf("partition discovery for topic %s failed: %v", l.topic, err)
				metrics.ConsumerPollErrorsTotal.WithLabelValues(l.topic, "discover").Inc()
			}
		}

		if len(l.cursors) == 0 {
			if !sleep(ctx, l.opts.EmptyInterval) {
				return
			}
			continue
		}

		for _, partition := range l.partitions() {
			if ctx.Err() != nil {
				return
			}
			if time.Now().Before(l.nextPoll[partition]) {
				continue
			}
			l.pollPartition(ctx, partition)
		}

		if !sleep(ctx, l.opts.PollInterval) {
			return
		}
	}
}

// discover refreshes the partition set, opening a cursor at the oldest
// retained record for every partition not already held. Cursors already
// held for partitions still present are retained untouched.
func (l *Loop) discover(ctx context.Context) error {
	parts, err := l.log.DiscoverPartitions(ctx, l.topic)
	if err != nil {
		return err
	}
	for _, p := range parts {
		if _, ok := l.cursors[p]; ok {
			continue
		}
		cur, err := l.log.OpenCursor(ctx, l.topic, p)
		if err != nil {
			logrus.Warnf("opening cursor for %s[%d] failed: %v", l.topic, p, err)
			continue
		}
		l.cursors[p] = cur
	}
	l.rediscover = false
	return nil
}

// pollPartition polls one cursor and dispatches its records. Errors are
// contained here: one partition's failure never aborts processing of its
// siblings.
func (l *Loop) pollPartition(ctx context.Context, partition int) {
	cur := l.cursors[partition]
	recs, err := cur.Poll(ctx, l.opts.BatchSize)

	switch {
	case err == nil:
		delete(l.throttled, partition)
		delete(l.nextPoll, partition)
		for _, rec := range recs {
			if ctx.Err() != nil {
				return
			}
			l.dispatch(ctx, rec)
		}

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return

	case errors.Is(err, eventbus.ErrThroughputExceeded):
		l.throttled[partition]++
		delay := calculateBackoff(l.opts.Retry, l.throttled[partition]-1)
		l.nextPoll[partition] = time.Now().Add(delay)
		metrics.ConsumerPollErrorsTotal.WithLabelValues(l.topic, "throttled").Inc()
		logrus.Warnf("%s[%d] throttled, retrying in %v", l.topic, partition, delay)

	case errors.Is(err, eventbus.ErrCursorExpired):
		cur.Close()
		delete(l.cursors, partition)
		delete(l.throttled, partition)
		delete(l.nextPoll, partition)
		l.rediscover = true
		metrics.ConsumerPollErrorsTotal.WithLabelValues(l.topic, "expired").Inc()
		logrus.Warnf("cursor for %s[%d] expired, rediscovering", l.topic, partition)

	default:
		metrics.ConsumerPollErrorsTotal.WithLabelValues(l.topic, "other").Inc()
		logrus.Errorf("polling %s[%d] failed: %v", l.topic, partition, err)
	}
}

// dispatch invokes the handler for one record, retrying failures with
// backoff. A record that keeps failing goes to the dead letter topic so
// the loop can move on.
func (l *Loop) dispatch(ctx context.Context, rec eventbus.Record) {
	metrics.ConsumerRecordsTotal.WithLabelValues(l.topic).Inc()

	var lastErr error
	for attempt := 0; attempt < l.opts.Retry.MaxAttempts; attempt++ {
		lastErr = l.handler(ctx, rec)
		if lastErr == nil {
			return
		}
		if attempt == l.opts.Retry.MaxAttempts-1 {
			break
		}
		backoff := calculateBackoff(l.opts.Retry, attempt)
		logrus.Warnf("handler error on %s[%d]@%d, attempt %d/%d: %v. Retrying in %v",
			l.topic, rec.Partition, rec.Offset, attempt+1, l.opts.Retry.MaxAttempts, lastErr, backoff)
		if !sleep(ctx, backoff) {
			return
		}
	}

	logrus.Errorf("record failed after %d attempts: topic=%s partition=%d offset=%d",
		l.opts.Retry.MaxAttempts, l.topic, rec.Partition, rec.Offset)

	if l.opts.DLQ == nil || l.opts.DLQTopic == "" {
		return
	}
	dlqMessage := models.DLQMessage{
		OriginalTopic: l.topic,
		Partition:     rec.Partition,
		Offset:        rec.Offset,
		Key:           string(rec.Key),
		Value:         string(rec.Value),
		Reason:        lastErr.Error(),
		Timestamp:     time.Now().UTC(),
		Attempts:      l.opts.Retry.MaxAttempts,
	}
	if err := l.opts.DLQ.Publish(ctx, l.opts.DLQTopic, string(rec.Key), dlqMessage); err != nil {
		logrus.Errorf("failed to send record to DLQ: %v", err)
		return
	}
	metrics.ConsumerDLQTotal.WithLabelValues(l.topic).Inc()
}

func (l *Loop) partitions() []int {
	out := make([]int, 0, len(l.cursors))
	for p := range l.cursors {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

func (l *Loop) closeCursors() {
	for p, cur := range l.cursors {
		if err := cur.Close(); err != nil {
			logrus.Warnf("closing cursor for %s[%d]: %v", l.topic, p, err)
		}
		delete(l.cursors, p)
	}
}

// sleep waits for d or until ctx is cancelled; it reports whether the full
// interval elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}

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

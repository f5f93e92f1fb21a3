package eventbus

import (
	"context"
	"errors"
)

// Transport conditions the consumer loop recovers from locally. They are
// never surfaced to an external caller.
var (
	// ErrCursorExpired means the cursor's position is no longer retained by
	// the log. The holder must discard the cursor and open a fresh one.
	ErrCursorExpired = errors.New("cursor expired")

	// ErrThroughputExceeded means the log throttled the read. The partition
	// should be skipped for this cycle and retried after a backoff.
	ErrThroughputExceeded = errors.New("throughput exceeded")
)

// Record is one entry read from a partition of a log.
type Record struct {
	Partition int
	Offset    int64
	Key       []byte
	Value     []byte
}

// Cursor is a resumable position within one partition. A cursor advances
// only on successful polls; a poll that fails leaves the position where it
// was. Cursors are exclusively owned by a single consumer loop and are not
// safe for concurrent use.
type Cursor interface {
	// Poll returns up to max new records past the current position, in log
	// order, and advances past them. An empty slice with a nil error means
	// no new records are available right now.
	Poll(ctx context.Context, max int) ([]Record, error)
	Partition() int
	Close() error
}

// Log is the partitioned, replayable event log the pipeline is written
// against. Both the Kafka implementation and the in-memory one satisfy it;
// every component receives it as an injected dependency, never as ambient
// global state.
type Log interface {
	// Append adds one record to the topic. Records sharing a key land on
	// the same partition and keep their relative order.
	Append(ctx context.Context, topic string, key, value []byte) error

	// DiscoverPartitions returns the current partition IDs of a topic. An
	// empty slice means the topic is not provisioned yet.
	DiscoverPartitions(ctx context.Context, topic string) ([]int, error)

	// OpenCursor opens a cursor on one partition, positioned at the oldest
	// retained record.
	OpenCursor(ctx context.Context, topic string, partition int) (Cursor, error)
}

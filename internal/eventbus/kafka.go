package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

const fetchWait = 200 * time.Millisecond

// KafkaLog implements Log on top of a Kafka-style broker. It maintains a
// pool of writers, one per topic, balanced by message key hash so that the
// correlation ID keying discipline holds, and opens raw per-partition
// readers for cursors.
type KafkaLog struct {
	brokers []string
	writers map[string]*kafka.Writer
}

// NewKafkaLog creates a KafkaLog with writers for the given topics.
// Appending to a topic outside this set is an error.
func NewKafkaLog(brokers []string, topics []string) *KafkaLog {
	writers := make(map[string]*kafka.Writer)
	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    t,
			Balancer: &kafka.Hash{},
		}
	}
	return &KafkaLog{
		brokers: brokers,
		writers: writers,
	}
}

func (l *KafkaLog) Append(ctx context.Context, topic string, key, value []byte) error {
	writer, ok := l.writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}
	return writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
}

func (l *KafkaLog) DiscoverPartitions(ctx context.Context, topic string) ([]int, error) {
	conn, err := kafka.DialContext(ctx, "tcp", l.brokers[0])
	if err != nil {
		return nil, fmt.Errorf("error dialing broker: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(topic)
	if err != nil {
		if errors.Is(err, kafka.UnknownTopicOrPartition) {
			return nil, nil
		}
		return nil, mapKafkaError(err)
	}

	ids := make([]int, 0, len(partitions))
	for _, p := range partitions {
		ids = append(ids, p.ID)
	}
	sort.Ints(ids)
	return ids, nil
}

func (l *KafkaLog) OpenCursor(ctx context.Context, topic string, partition int) (Cursor, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   l.brokers,
		Topic:     topic,
		Partition: partition,
		MinBytes:  1,
		MaxBytes:  10e6,
	})
	if err := reader.SetOffset(kafka.FirstOffset); err != nil {
		reader.Close()
		return nil, mapKafkaError(err)
	}
	return &kafkaCursor{reader: reader, partition: partition}, nil
}

// Close releases the topic writers.
func (l *KafkaLog) Close() error {
	var lastErr error
	for _, w := range l.writers {
		if err := w.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

type kafkaCursor struct {
	reader    *kafka.Reader
	partition int
}

func (c *kafkaCursor) Partition() int { return c.partition }

func (c *kafkaCursor) Close() error { return c.reader.Close() }

// Poll fetches messages until the batch is full or the broker has nothing
// more to hand out within the fetch window. Partial batches cut short by a
// broker error are returned without the error; the failure repeats on the
// next poll if it is persistent.
func (c *kafkaCursor) Poll(ctx context.Context, max int) ([]Record, error) {
	var out []Record
	for len(out) < max {
		fetchCtx, cancel := context.WithTimeout(ctx, fetchWait)
		msg, err := c.reader.FetchMessage(fetchCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			if len(out) > 0 {
				break
			}
			return nil, mapKafkaError(err)
		}
		out = append(out, Record{
			Partition: c.partition,
			Offset:    msg.Offset,
			Key:       msg.Key,
			Value:     msg.Value,
		})
	}
	return out, nil
}

// mapKafkaError translates broker error codes into the transport sentinels
// the consumer loop keys its recovery on.
func mapKafkaError(err error) error {
	if errors.Is(err, kafka.OffsetOutOfRange) {
		return fmt.Errorf("%w: %v", ErrCursorExpired, err)
	}
	var kerr kafka.Error
	if errors.As(err, &kerr) && kerr.Temporary() {
		return fmt.Errorf("%w: %v", ErrThroughputExceeded, err)
	}
	return err
}

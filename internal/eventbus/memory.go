package eventbus

import (
	"context"
	"fmt"
	"hash/crc32"
	"sync"
)

// MemoryLog is an in-process Log used by tests and local runs. Topics are
// provisioned on first append; a topic that was never appended to has no
// partitions, which exercises the consumer loop's empty-rediscovery path.
type MemoryLog struct {
	mu         sync.Mutex
	partitions int
	topics     map[string][]*memoryPartition
}

type memoryPartition struct {
	base    int64 // offset of the oldest retained record
	records []Record
}

func NewMemoryLog(partitions int) *MemoryLog {
	if partitions <= 0 {
		partitions = 1
	}
	return &MemoryLog{
		partitions: partitions,
		topics:     make(map[string][]*memoryPartition),
	}
}

func (l *MemoryLog) Append(ctx context.Context, topic string, key, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	parts, ok := l.topics[topic]
	if !ok {
		parts = make([]*memoryPartition, l.partitions)
		for i := range parts {
			parts[i] = &memoryPartition{}
		}
		l.topics[topic] = parts
	}

	var idx int
	if len(key) > 0 {
		idx = int(crc32.ChecksumIEEE(key) % uint32(len(parts)))
	}
	p := parts[idx]
	rec := Record{
		Partition: idx,
		Offset:    p.base + int64(len(p.records)),
		Key:       append([]byte(nil), key...),
		Value:     append([]byte(nil), value...),
	}
	p.records = append(p.records, rec)
	return nil
}

func (l *MemoryLog) DiscoverPartitions(ctx context.Context, topic string) ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	parts, ok := l.topics[topic]
	if !ok {
		return nil, nil
	}
	ids := make([]int, len(parts))
	for i := range parts {
		ids[i] = i
	}
	return ids, nil
}

func (l *MemoryLog) OpenCursor(ctx context.Context, topic string, partition int) (Cursor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.partition(topic, partition)
	if err != nil {
		return nil, err
	}
	return &memoryCursor{log: l, topic: topic, part: partition, next: p.base}, nil
}

// Trim drops every record of a partition below upTo, simulating retention
// expiry: cursors positioned before upTo fail their next poll with
// ErrCursorExpired.
func (l *MemoryLog) Trim(topic string, partition int, upTo int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.partition(topic, partition)
	if err != nil || upTo <= p.base {
		return
	}
	keep := upTo - p.base
	if keep > int64(len(p.records)) {
		keep = int64(len(p.records))
	}
	p.records = p.records[keep:]
	p.base = upTo
}

func (l *MemoryLog) partition(topic string, partition int) (*memoryPartition, error) {
	parts, ok := l.topics[topic]
	if !ok {
		return nil, fmt.Errorf("unknown topic %s", topic)
	}
	if partition < 0 || partition >= len(parts) {
		return nil, fmt.Errorf("unknown partition %d of topic %s", partition, topic)
	}
	return parts[partition], nil
}

type memoryCursor struct {
	log   *MemoryLog
	topic string
	part  int
	next  int64
}

func (c *memoryCursor) Partition() int { return c.part }

func (c *memoryCursor) Close() error { return nil }

func (c *memoryCursor) Poll(ctx context.Context, max int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.log.mu.Lock()
	defer c.log.mu.Unlock()

	p, err := c.log.partition(c.topic, c.part)
	if err != nil {
		return nil, err
	}
	if c.next < p.base {
		return nil, fmt.Errorf("%w: position %d below oldest retained %d", ErrCursorExpired, c.next, p.base)
	}

	start := c.next - p.base
	if start >= int64(len(p.records)) {
		return nil, nil
	}
	end := start + int64(max)
	if end > int64(len(p.records)) {
		end = int64(len(p.records))
	}
	out := make([]Record, end-start)
	copy(out, p.records[start:end])
	c.next = p.base + end
	return out, nil
}

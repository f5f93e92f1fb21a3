package eventbus_test

import (
	"context"
	"testing"

	"github.com/Rishab260/loan-app-poc/internal/eventbus"
	"github.com/stretchr/testify/assert"
)

func TestMemoryLog_DiscoverBeforeProvisioning(t *testing.T) {
	log := eventbus.NewMemoryLog(2)

	parts, err := log.DiscoverPartitions(context.Background(), "loans.requests")

	assert.NoError(t, err)
	assert.Empty(t, parts)
}

func TestMemoryLog_SameKeySamePartitionInOrder(t *testing.T) {
	log := eventbus.NewMemoryLog(4)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := log.Append(ctx, "loans.requests", []byte("loan-1"), []byte{byte(i)})
		assert.NoError(t, err)
	}

	parts, err := log.DiscoverPartitions(ctx, "loans.requests")
	assert.NoError(t, err)
	assert.Len(t, parts, 4)

	var got []eventbus.Record
	for _, p := range parts {
		cur, err := log.OpenCursor(ctx, "loans.requests", p)
		assert.NoError(t, err)
		recs, err := cur.Poll(ctx, 10)
		assert.NoError(t, err)
		got = append(got, recs...)
	}

	assert.Len(t, got, 5)
	for i, rec := range got {
		assert.Equal(t, got[0].Partition, rec.Partition)
		assert.Equal(t, []byte{byte(i)}, rec.Value)
	}
}

func TestMemoryCursor_PollAdvances(t *testing.T) {
	log := eventbus.NewMemoryLog(1)
	ctx := context.Background()

	assert.NoError(t, log.Append(ctx, "t", []byte("k"), []byte("a")))
	assert.NoError(t, log.Append(ctx, "t", []byte("k"), []byte("b")))

	cur, err := log.OpenCursor(ctx, "t", 0)
	assert.NoError(t, err)

	recs, err := cur.Poll(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, []byte("a"), recs[0].Value)

	recs, err = cur.Poll(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, []byte("b"), recs[0].Value)

	recs, err = cur.Poll(ctx, 10)
	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestMemoryCursor_TrimExpiresCursor(t *testing.T) {
	log := eventbus.NewMemoryLog(1)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.NoError(t, log.Append(ctx, "t", []byte("k"), []byte{byte(i)}))
	}

	cur, err := log.OpenCursor(ctx, "t", 0)
	assert.NoError(t, err)

	log.Trim("t", 0, 2)

	_, err = cur.Poll(ctx, 10)
	assert.ErrorIs(t, err, eventbus.ErrCursorExpired)

	// A fresh cursor starts at the oldest retained record.
	cur, err = log.OpenCursor(ctx, "t", 0)
	assert.NoError(t, err)
	recs, err := cur.Poll(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, []byte{2}, recs[0].Value)
	assert.Equal(t, int64(2), recs[0].Offset)
}

func TestMemoryCursor_PollHonorsCancellation(t *testing.T) {
	log := eventbus.NewMemoryLog(1)
	ctx := context.Background()
	assert.NoError(t, log.Append(ctx, "t", []byte("k"), []byte("a")))

	cur, err := log.OpenCursor(ctx, "t", 0)
	assert.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = cur.Poll(cancelled, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

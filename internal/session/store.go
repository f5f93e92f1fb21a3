package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store maps opaque session tokens to user IDs with a bounded TTL. An
// absent or expired token reads back as "", never as an error.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Put(ctx context.Context, token, userID string) error {
	return s.client.Set(ctx, key(token), userID, s.ttl).Err()
}

func (s *Store) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, key(token)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Delete removes the session unconditionally. Deleting an absent token is
// not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, key(token)).Err()
}

func key(token string) string {
	return "session:" + token
}

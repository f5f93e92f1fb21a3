package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rishab260/loan-app-poc/internal/cache"
	"github.com/Rishab260/loan-app-poc/internal/models"
)

// Store keeps the full submission payload keyed by correlation ID for a
// bounded TTL so downstream stages can enrich decision events without
// re-querying the submitter. Expiry is expected; Get returns nil for an
// absent snapshot.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewStore(c cache.Cache, ttl time.Duration) *Store {
	return &Store{cache: c, ttl: ttl}
}

func (s *Store) Put(ctx context.Context, snap models.LoanSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}
	return s.cache.Set(ctx, key(snap.ID), data, s.ttl)
}

func (s *Store) Get(ctx context.Context, id string) (*models.LoanSnapshot, error) {
	raw, err := s.cache.Get(ctx, key(id))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var snap models.LoanSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("error unmarshaling snapshot %s: %w", id, err)
	}
	return &snap, nil
}

func key(id string) string {
	return "loan_snapshot:" + id
}

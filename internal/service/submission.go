package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Rishab260/loan-app-poc/internal/metrics"
	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/sirupsen/logrus"
)

// Publisher defines the interface for appending events to the partitioned
// log, keyed so that one correlation ID stays on one partition.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

// SnapshotStore caches submission payloads by correlation ID. Get returns
// nil for an expired or never-written snapshot.
type SnapshotStore interface {
	Put(ctx context.Context, snap models.LoanSnapshot) error
	Get(ctx context.Context, id string) (*models.LoanSnapshot, error)
}

// IDGenerator allocates correlation IDs and session tokens.
type IDGenerator interface {
	NewID() string
}

// SubmissionService is the gateway's core: it gives every submission a
// durable identity, caches the payload for later enrichment and puts the
// request on the log for the decision service.
type SubmissionService struct {
	IDs       IDGenerator
	Snapshots SnapshotStore
	Publisher Publisher
	Topic     string
}

func NewSubmissionService(ids IDGenerator, snapshots SnapshotStore, publisher Publisher, topic string) *SubmissionService {
	return &SubmissionService{
		IDs:       ids,
		Snapshots: snapshots,
		Publisher: publisher,
		Topic:     topic,
	}
}

// Submit allocates a correlation ID, caches the snapshot and publishes the
// loan request event. The snapshot write is attempted before the publish
// and is best effort: a cache failure is logged and swallowed, while a
// publish failure is the caller's to retry.
func (s *SubmissionService) Submit(ctx context.Context, user *models.User, fields map[string]string) (string, error) {
	id := s.IDs.NewID()

	var submittedBy string
	if user != nil {
		submittedBy = user.UserID
	}

	snap := models.LoanSnapshot{ID: id, SubmittedBy: submittedBy, Fields: fields}
	if err := s.Snapshots.Put(ctx, snap); err != nil {
		logrus.Warnf("snapshot write for %s failed: %v", id, err)
	}

	event := models.LoanRequestEvent{ID: id, SubmittedBy: submittedBy, Fields: fields}
	if err := s.Publisher.Publish(ctx, s.Topic, id, event); err != nil {
		return "", fmt.Errorf("error publishing loan request: %w", err)
	}

	metrics.SubmissionsTotal.Inc()
	if amount, err := strconv.ParseFloat(fields["loan_amount"], 64); err == nil {
		metrics.LoanAmounts.WithLabelValues(fields["loan_type"]).Observe(amount)
	}

	return id, nil
}

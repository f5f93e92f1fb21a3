package service

import (
	"context"
	"encoding/json"

	"github.com/Rishab260/loan-app-poc/internal/metrics"
	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/sirupsen/logrus"
)

// Broadcaster is the fan-out side of the ephemeral pub/sub channel.
type Broadcaster interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// AdminNotifier pushes a user's final loan choice to the external admin
// system.
type AdminNotifier interface {
	SyncLoanChoice(ctx context.Context, choice models.LoanChoice) error
}

// NotifierService consumes decision events and fans each one out to the
// subscribers waiting on its correlation ID. For approved decisions it
// additionally enriches the event from the snapshot cache and nudges the
// admin system; everything past the fan-out is advisory.
type NotifierService struct {
	Broadcast Broadcaster
	Snapshots SnapshotStore
	Admin     AdminNotifier
}

func NewNotifierService(broadcast Broadcaster, snapshots SnapshotStore, admin AdminNotifier) *NotifierService {
	return &NotifierService{
		Broadcast: broadcast,
		Snapshots: snapshots,
		Admin:     admin,
	}
}

// ProcessStatus handles one decision event. The fan-out in step one is
// unconditional; it happens even when the snapshot has expired or the
// admin call fails.
func (s *NotifierService) ProcessStatus(ctx context.Context, event models.LoanStatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := s.Broadcast.Publish(ctx, models.BroadcastTopic(event.ID), payload); err != nil {
		logrus.Warnf("broadcast of decision for %s failed: %v", event.ID, err)
	}
	metrics.NotificationsTotal.WithLabelValues(event.Status).Inc()

	if event.Status != models.StatusApproved {
		return nil
	}

	snap, err := s.Snapshots.Get(ctx, event.ID)
	if err != nil {
		logrus.Warnf("snapshot read for %s failed: %v", event.ID, err)
		return nil
	}
	if snap == nil {
		// Expired or never cached; the fan-out already happened, so
		// skipping enrichment is fine.
		return nil
	}

	opted := snap.Fields["loan_type"]
	if snap.SubmittedBy == "" || !models.ValidLoanChoice(opted) {
		return nil
	}

	choice := models.LoanChoice{
		UserID:     snap.SubmittedBy,
		Opted:      opted,
		Name:       snap.Fields["name"],
		Address:    snap.Fields["address"],
		LoanAmount: snap.Fields["loan_amount"],
	}
	if err := s.Admin.SyncLoanChoice(ctx, choice); err != nil {
		logrus.Warnf("admin sync for %s failed: %v", event.ID, err)
		metrics.AdminSyncFailuresTotal.Inc()
	}
	return nil
}

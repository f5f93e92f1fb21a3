package service

import (
	"context"
	"strconv"

	"github.com/Rishab260/loan-app-poc/internal/metrics"
	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/sirupsen/logrus"
)

// DecisionPolicy turns one loan request into a status. Policies must be
// deterministic and pure: the log delivers at least once, and the same
// request must yield the same status every time it is re-delivered.
type DecisionPolicy interface {
	Decide(event models.LoanRequestEvent) string
}

// ThresholdPolicy approves every request whose loan_amount parses and does
// not exceed MaxAmount. MaxAmount zero disables the cap, so everything
// with a parseable amount is approved.
type ThresholdPolicy struct {
	MaxAmount float64
}

func (p ThresholdPolicy) Decide(event models.LoanRequestEvent) string {
	raw, ok := event.Fields["loan_amount"]
	if !ok {
		return models.StatusDenied
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return models.StatusDenied
	}
	if p.MaxAmount > 0 && amount > p.MaxAmount {
		return models.StatusDenied
	}
	return models.StatusApproved
}

// DecisionService consumes loan request events and publishes the matching
// decision, keyed by the same correlation ID so order is preserved for
// downstream consumers.
type DecisionService struct {
	Publisher Publisher
	Policy    DecisionPolicy
	Topic     string
}

func NewDecisionService(publisher Publisher, policy DecisionPolicy, topic string) *DecisionService {
	return &DecisionService{
		Publisher: publisher,
		Policy:    policy,
		Topic:     topic,
	}
}

// ProcessRequest decides one request event. Publishing the same decision
// again on re-delivery is safe: downstream consumers treat decision events
// as idempotent notifications.
func (s *DecisionService) ProcessRequest(ctx context.Context, event models.LoanRequestEvent) error {
	status := s.Policy.Decide(event)
	logrus.Infof("loan %s decided: %s", event.ID, status)

	if err := s.Publisher.Publish(ctx, s.Topic, event.ID, models.LoanStatusEvent{ID: event.ID, Status: status}); err != nil {
		return err
	}
	metrics.DecisionsTotal.WithLabelValues(status, "policy").Inc()
	return nil
}

// Decide publishes a manual operator decision, bypassing the policy.
// A status outside the allowed set is rejected with ErrInvalidOption.
func (s *DecisionService) Decide(ctx context.Context, loanID, status string) error {
	if !models.ValidStatus(status) {
		return models.ErrInvalidOption
	}
	if err := s.Publisher.Publish(ctx, s.Topic, loanID, models.LoanStatusEvent{ID: loanID, Status: status}); err != nil {
		return err
	}
	metrics.DecisionsTotal.WithLabelValues(status, "manual").Inc()
	return nil
}

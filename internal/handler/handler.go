package handler

import (
	"context"
	"encoding/json"

	"github.com/Rishab260/loan-app-poc/internal/eventbus"
	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/sirupsen/logrus"
)

type DecisionServiceIn interface {
	ProcessRequest(context.Context, models.LoanRequestEvent) error
}

type NotifierServiceIn interface {
	ProcessStatus(context.Context, models.LoanStatusEvent) error
}

// RequestHandler decodes loan request records off the log and hands them
// to the decision service.
type RequestHandler struct {
	DecisionService DecisionServiceIn
}

func Request(s DecisionServiceIn) *RequestHandler {
	return &RequestHandler{
		DecisionService: s,
	}
}

func (h *RequestHandler) Handle(ctx context.Context, rec eventbus.Record) error {
	var event models.LoanRequestEvent

	if err := json.Unmarshal(rec.Value, &event); err != nil {
		logrus.Errorf("Error unmarshalling LoanRequestEvent: %s", err.Error())
		return err
	}
	if event.ID == "" {
		logrus.Errorf("LoanRequestEvent at %s/%d/%d has no id", models.LoanRequestsTopic, rec.Partition, rec.Offset)
		return models.ErrInvalidOption
	}

	err := h.DecisionService.ProcessRequest(ctx, event)
	if err != nil {
		logrus.Errorf("Error deciding loan %s: %s", event.ID, err.Error())
		return err
	}

	logrus.Infof("LoanRequestEvent %s handled successfully", event.ID)

	return nil
}

// StatusHandler decodes decision records off the log and hands them to the
// notifier service for fan-out.
type StatusHandler struct {
	NotifierService NotifierServiceIn
}

func Status(s NotifierServiceIn) *StatusHandler {
	return &StatusHandler{
		NotifierService: s,
	}
}

func (h *StatusHandler) Handle(ctx context.Context, rec eventbus.Record) error {
	var event models.LoanStatusEvent

	if err := json.Unmarshal(rec.Value, &event); err != nil {
		logrus.Errorf("Error unmarshalling LoanStatusEvent: %s", err.Error())
		return err
	}
	if event.ID == "" || !models.ValidStatus(event.Status) {
		logrus.Errorf("LoanStatusEvent at %s/%d/%d is malformed", models.LoanStatusTopic, rec.Partition, rec.Offset)
		return models.ErrInvalidOption
	}

	err := h.NotifierService.ProcessStatus(ctx, event)
	if err != nil {
		logrus.Errorf("Error notifying loan %s: %s", event.ID, err.Error())
		return err
	}

	logrus.Infof("LoanStatusEvent %s handled successfully", event.ID)

	return nil
}

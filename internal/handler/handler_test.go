package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Rishab260/loan-app-poc/internal/eventbus"
	"github.com/Rishab260/loan-app-poc/internal/handler"
	"github.com/Rishab260/loan-app-poc/internal/handler/mocks"
	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func record(t *testing.T, v interface{}) eventbus.Record {
	t.Helper()
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	return eventbus.Record{Partition: 0, Offset: 0, Key: []byte("loan-123"), Value: raw}
}

func TestRequestHandle_Success(t *testing.T) {
	mockService := mocks.NewMockDecisionServiceIn(t)
	h := handler.Request(mockService)

	event := models.LoanRequestEvent{
		ID:          "loan-123",
		SubmittedBy: "user-456",
		Fields:      map[string]string{"loan_amount": "5000", "loan_type": models.LoanChoicePayMortgage},
	}

	ctx := context.Background()

	mockService.EXPECT().
		ProcessRequest(ctx, event).
		Return(nil).
		Once()

	err := h.Handle(ctx, record(t, event))

	assert.NoError(t, err)
	mockService.AssertExpectations(t)
}

func TestRequestHandle_UnmarshalError(t *testing.T) {
	mockService := mocks.NewMockDecisionServiceIn(t)
	h := handler.Request(mockService)

	ctx := context.Background()

	err := h.Handle(ctx, eventbus.Record{Value: []byte(`{"invalid json`)})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	mockService.AssertNotCalled(t, "ProcessRequest", mock.Anything, mock.Anything)
}

func TestRequestHandle_MissingID(t *testing.T) {
	mockService := mocks.NewMockDecisionServiceIn(t)
	h := handler.Request(mockService)

	ctx := context.Background()

	err := h.Handle(ctx, eventbus.Record{Value: []byte(`{"fields":{"loan_amount":"100"}}`)})

	assert.Error(t, err)
	mockService.AssertNotCalled(t, "ProcessRequest", mock.Anything, mock.Anything)
}

func TestRequestHandle_ServiceError(t *testing.T) {
	mockService := mocks.NewMockDecisionServiceIn(t)
	h := handler.Request(mockService)

	event := models.LoanRequestEvent{ID: "loan-123"}
	ctx := context.Background()
	expectedError := errors.New("decision failed")

	mockService.EXPECT().
		ProcessRequest(ctx, event).
		Return(expectedError).
		Once()

	err := h.Handle(ctx, record(t, event))

	assert.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockService.AssertExpectations(t)
}

func TestStatusHandle_Success(t *testing.T) {
	mockService := mocks.NewMockNotifierServiceIn(t)
	h := handler.Status(mockService)

	event := models.LoanStatusEvent{ID: "loan-123", Status: models.StatusApproved}
	ctx := context.Background()

	mockService.EXPECT().
		ProcessStatus(ctx, event).
		Return(nil).
		Once()

	err := h.Handle(ctx, record(t, event))

	assert.NoError(t, err)
	mockService.AssertExpectations(t)
}

func TestStatusHandle_UnknownStatus(t *testing.T) {
	mockService := mocks.NewMockNotifierServiceIn(t)
	h := handler.Status(mockService)

	ctx := context.Background()

	err := h.Handle(ctx, eventbus.Record{Value: []byte(`{"id":"loan-123","status":"maybe"}`)})

	assert.Error(t, err)
	mockService.AssertNotCalled(t, "ProcessStatus", mock.Anything, mock.Anything)
}

func TestStatusHandle_ServiceError(t *testing.T) {
	mockService := mocks.NewMockNotifierServiceIn(t)
	h := handler.Status(mockService)

	event := models.LoanStatusEvent{ID: "loan-123", Status: models.StatusDenied}
	ctx := context.Background()
	expectedError := errors.New("notify failed")

	mockService.EXPECT().
		ProcessStatus(ctx, event).
		Return(expectedError).
		Once()

	err := h.Handle(ctx, record(t, event))

	assert.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockService.AssertExpectations(t)
}

func TestConstructors(t *testing.T) {
	mockDecision := mocks.NewMockDecisionServiceIn(t)
	mockNotifier := mocks.NewMockNotifierServiceIn(t)

	rh := handler.Request(mockDecision)
	sh := handler.Status(mockNotifier)

	assert.NotNil(t, rh)
	assert.Equal(t, mockDecision, rh.DecisionService)
	assert.NotNil(t, sh)
	assert.Equal(t, mockNotifier, sh.NotifierService)
}

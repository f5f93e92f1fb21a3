package handlers_test

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Rishab260/loan-app-poc/internal/broadcast"
	"github.com/Rishab260/loan-app-poc/internal/handlers"
	"github.com/Rishab260/loan-app-poc/internal/handlers/mocks"
	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSubmitFormReturnsAcceptedWithID(t *testing.T) {
	service := mocks.NewMockSubmissionService(t)
	service.EXPECT().Submit(mock.Anything, (*models.User)(nil), map[string]string{
		"name":        "Ada",
		"loan_amount": "1200",
	}).Return("loan-1", nil).Once()

	h := handlers.NewLoanHandler(service, mocks.NewMockSnapshotReader(t), broadcast.NewHub())
	router := gin.New()
	router.POST("/submit", h.Submit)

	form := url.Values{"name": {"Ada"}, "loan_amount": {"1200"}}
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"id":"loan-1"}`, w.Body.String())
}

func TestSubmitJSONBody(t *testing.T) {
	service := mocks.NewMockSubmissionService(t)
	service.EXPECT().Submit(mock.Anything, (*models.User)(nil), map[string]string{
		"loan_type": models.LoanChoiceRefinance,
	}).Return("loan-2", nil).Once()

	h := handlers.NewLoanHandler(service, mocks.NewMockSnapshotReader(t), broadcast.NewHub())
	router := gin.New()
	router.POST("/submit", h.Submit)

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(`{"loan_type":"refinance"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestSubmitServiceFailureIs500(t *testing.T) {
	service := mocks.NewMockSubmissionService(t)
	service.EXPECT().Submit(mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("broker unavailable")).Once()

	h := handlers.NewLoanHandler(service, mocks.NewMockSnapshotReader(t), broadcast.NewHub())
	router := gin.New()
	router.POST("/submit", h.Submit)

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetLoanNotFound(t *testing.T) {
	snapshots := mocks.NewMockSnapshotReader(t)
	snapshots.EXPECT().Get(mock.Anything, "loan-missing").Return(nil, nil).Once()

	h := handlers.NewLoanHandler(mocks.NewMockSubmissionService(t), snapshots, broadcast.NewHub())
	router := gin.New()
	router.GET("/loans/:id", h.GetLoan)

	req := httptest.NewRequest(http.MethodGet, "/loans/loan-missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLoanReturnsSnapshot(t *testing.T) {
	snapshots := mocks.NewMockSnapshotReader(t)
	snapshots.EXPECT().Get(mock.Anything, "loan-3").Return(&models.LoanSnapshot{
		ID:          "loan-3",
		SubmittedBy: "user-1",
		Fields:      map[string]string{"loan_amount": "900"},
	}, nil).Once()

	h := handlers.NewLoanHandler(mocks.NewMockSubmissionService(t), snapshots, broadcast.NewHub())
	router := gin.New()
	router.GET("/loans/:id", h.GetLoan)

	req := httptest.NewRequest(http.MethodGet, "/loans/loan-3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"loan-3"`)
}

func TestEventsStreamsPublishedDecision(t *testing.T) {
	hub := broadcast.NewHub()
	h := handlers.NewLoanHandler(mocks.NewMockSubmissionService(t), mocks.NewMockSnapshotReader(t), hub)
	router := gin.New()
	router.GET("/events/:id", h.Events)

	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/events/loan-4")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// The subscription is registered before headers are written, so once
	// headers arrive a publish is guaranteed to be seen.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		for {
			if err := hub.Publish(ctx, models.BroadcastTopic("loan-4"), []byte(`{"id":"loan-4","status":"approved"}`)); err != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(10 * time.Millisecond):
			}
		}
	}()

	reader := bufio.NewReader(resp.Body)
	deadline := time.After(2 * time.Second)
	lines := make(chan string, 1)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			if strings.HasPrefix(line, "data: ") {
				lines <- strings.TrimSpace(strings.TrimPrefix(line, "data: "))
				return
			}
		}
	}()

	select {
	case line := <-lines:
		assert.JSONEq(t, `{"id":"loan-4","status":"approved"}`, line)
	case <-deadline:
		t.Fatal("no event received before deadline")
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Login(mock.Anything, "user-1", "ada", "s3cret").Return("token-1", nil).Once()

	h := handlers.NewAuthHandler(auth, 30*time.Minute)
	router := gin.New()
	router.POST("/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"user_id":"user-1","username":"ada","credential":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, "token-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, int((30 * time.Minute).Seconds()), cookies[0].MaxAge)
}

func TestLoginBadCredentialsIs401(t *testing.T) {
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Login(mock.Anything, "user-1", "", "wrong").Return("", models.ErrUnauthorized).Once()

	h := handlers.NewAuthHandler(auth, 30*time.Minute)
	router := gin.New()
	router.POST("/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"user_id":"user-1","credential":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLogoutClearsCookieEvenWithoutSession(t *testing.T) {
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Logout(mock.Anything, "").Return(nil).Once()

	h := handlers.NewAuthHandler(auth, 30*time.Minute)
	router := gin.New()
	router.POST("/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestAuthRequiredRejectsMissingSession(t *testing.T) {
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Authenticate(mock.Anything, "").Return(nil, models.ErrUnauthorized).Once()

	h := handlers.NewAuthHandler(auth, 30*time.Minute)
	router := gin.New()
	router.GET("/profile", handlers.AuthRequired(auth), h.Profile)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileReturnsAuthenticatedUser(t *testing.T) {
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Authenticate(mock.Anything, "token-2").Return(&models.User{
		UserID:   "user-2",
		Username: "grace",
	}, nil).Once()

	h := handlers.NewAuthHandler(auth, 30*time.Minute)
	router := gin.New()
	router.GET("/profile", handlers.AuthRequired(auth), h.Profile)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "token-2"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user-2"`)
	assert.NotContains(t, w.Body.String(), "credential")
}

func TestSubmitRequiresSession(t *testing.T) {
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Authenticate(mock.Anything, "").Return(nil, models.ErrUnauthorized).Once()
	service := mocks.NewMockSubmissionService(t)

	h := handlers.NewLoanHandler(service, mocks.NewMockSnapshotReader(t), broadcast.NewHub())
	router := gin.New()
	router.POST("/submit", handlers.AuthRequired(auth), h.Submit)

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	service.AssertNotCalled(t, "Submit")
}

func TestSubmitAttributesAuthenticatedUser(t *testing.T) {
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Authenticate(mock.Anything, "token-9").Return(&models.User{UserID: "user-9"}, nil).Once()
	service := mocks.NewMockSubmissionService(t)
	service.EXPECT().Submit(mock.Anything, &models.User{UserID: "user-9"}, mock.Anything).Return("loan-5", nil).Once()

	h := handlers.NewLoanHandler(service, mocks.NewMockSnapshotReader(t), broadcast.NewHub())
	router := gin.New()
	router.POST("/submit", handlers.AuthRequired(auth), h.Submit)

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "session", Value: "token-9"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestApproveAndDeny(t *testing.T) {
	decisions := mocks.NewMockDecisionService(t)
	decisions.EXPECT().Decide(mock.Anything, "loan-6", models.StatusApproved).Return(nil).Once()
	decisions.EXPECT().Decide(mock.Anything, "loan-6", models.StatusDenied).Return(nil).Once()

	h := handlers.NewDecisionHandler(decisions)
	router := gin.New()
	router.POST("/approve/:id", h.Approve)
	router.POST("/deny/:id", h.Deny)

	for _, path := range []string{"/approve/loan-6", "/deny/loan-6"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestDecideInvalidOptionIs400(t *testing.T) {
	decisions := mocks.NewMockDecisionService(t)
	decisions.EXPECT().Decide(mock.Anything, "loan-7", models.StatusApproved).
		Return(models.ErrInvalidOption).Once()

	h := handlers.NewDecisionHandler(decisions)
	router := gin.New()
	router.POST("/approve/:id", h.Approve)

	req := httptest.NewRequest(http.MethodPost, "/approve/loan-7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

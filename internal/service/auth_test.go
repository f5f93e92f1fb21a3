package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/Rishab260/loan-app-poc/internal/service"
	"github.com/Rishab260/loan-app-poc/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginRegistersUnknownUser(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockIDGenerator(t)

	users.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, nil).Once()
	users.EXPECT().Create(mock.Anything, &models.User{
		UserID:     "user-1",
		Username:   "ada",
		Credential: "s3cret",
	}).Return(nil).Once()
	tokens.EXPECT().NewID().Return("token-1").Once()
	sessions.EXPECT().Put(mock.Anything, "token-1", "user-1").Return(nil).Once()

	svc := service.NewAuthService(users, sessions, tokens)
	token, err := svc.Login(context.Background(), "user-1", "ada", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
}

func TestLoginExistingUserMatchingCredential(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockIDGenerator(t)

	users.EXPECT().GetByID(mock.Anything, "user-2").Return(&models.User{
		UserID:     "user-2",
		Username:   "grace",
		Credential: "s3cret",
	}, nil).Once()
	tokens.EXPECT().NewID().Return("token-2").Once()
	sessions.EXPECT().Put(mock.Anything, "token-2", "user-2").Return(nil).Once()

	svc := service.NewAuthService(users, sessions, tokens)
	token, err := svc.Login(context.Background(), "user-2", "grace", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
	users.AssertNotCalled(t, "Create")
}

func TestLoginWrongCredentialIsUnauthorized(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockIDGenerator(t)

	users.EXPECT().GetByID(mock.Anything, "user-2").Return(&models.User{
		UserID:     "user-2",
		Credential: "s3cret",
	}, nil).Once()

	svc := service.NewAuthService(users, sessions, tokens)
	token, err := svc.Login(context.Background(), "user-2", "grace", "wrong")

	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Empty(t, token)
	sessions.AssertNotCalled(t, "Put")
}

func TestLoginEmptyFieldsAreUnauthorized(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockIDGenerator(t)

	svc := service.NewAuthService(users, sessions, tokens)

	_, err := svc.Login(context.Background(), "", "ada", "s3cret")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = svc.Login(context.Background(), "user-1", "ada", "")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestAuthenticateStripsCredential(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockIDGenerator(t)

	sessions.EXPECT().Get(mock.Anything, "token-3").Return("user-3", nil).Once()
	users.EXPECT().GetByID(mock.Anything, "user-3").Return(&models.User{
		UserID:     "user-3",
		Username:   "lin",
		Credential: "s3cret",
	}, nil).Once()

	svc := service.NewAuthService(users, sessions, tokens)
	user, err := svc.Authenticate(context.Background(), "token-3")

	require.NoError(t, err)
	assert.Equal(t, "user-3", user.UserID)
	assert.Empty(t, user.Credential)
}

func TestAuthenticateRejectsMissingOrExpiredSession(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockIDGenerator(t)
	svc := service.NewAuthService(users, sessions, tokens)

	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	sessions.EXPECT().Get(mock.Anything, "stale").Return("", nil).Once()
	_, err = svc.Authenticate(context.Background(), "stale")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestAuthenticateRejectsVanishedUser(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockIDGenerator(t)

	sessions.EXPECT().Get(mock.Anything, "token-4").Return("user-4", nil).Once()
	users.EXPECT().GetByID(mock.Anything, "user-4").Return(nil, nil).Once()

	svc := service.NewAuthService(users, sessions, tokens)
	_, err := svc.Authenticate(context.Background(), "token-4")

	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestLogoutIsIdempotent(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockIDGenerator(t)
	svc := service.NewAuthService(users, sessions, tokens)

	require.NoError(t, svc.Logout(context.Background(), ""))

	sessions.EXPECT().Delete(mock.Anything, "token-5").Return(nil).Twice()
	require.NoError(t, svc.Logout(context.Background(), "token-5"))
	require.NoError(t, svc.Logout(context.Background(), "token-5"))
}

func TestLoginStoreErrorIsPropagated(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionStore(t)
	tokens := mocks.NewMockIDGenerator(t)

	users.EXPECT().GetByID(mock.Anything, "user-6").Return(nil, errors.New("db down")).Once()

	svc := service.NewAuthService(users, sessions, tokens)
	_, err := svc.Login(context.Background(), "user-6", "max", "s3cret")

	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrUnauthorized)
}

package service

import (
	"context"

	"github.com/Rishab260/loan-app-poc/internal/models"
)

// UserRepo persists user records. GetByID returns nil for an unknown user.
type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// SessionStore holds token to user ID mappings with a bounded TTL. Get
// returns "" for an absent or expired token.
type SessionStore interface {
	Put(ctx context.Context, token, userID string) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// AuthService gates submission authorship. Registration is open on first
// login; this is demo-grade and explicitly not hardened.
type AuthService struct {
	Users    UserRepo
	Sessions SessionStore
	Tokens   IDGenerator
}

func NewAuthService(users UserRepo, sessions SessionStore, tokens IDGenerator) *AuthService {
	return &AuthService{
		Users:    users,
		Sessions: sessions,
		Tokens:   tokens,
	}
}

// Login authenticates or registers the user and issues a session token.
// An existing user must present the exact credential; an unknown user is
// created with the one supplied.
func (s *AuthService) Login(ctx context.Context, userID, username, credential string) (string, error) {
	if userID == "" || credential == "" {
		return "", models.ErrUnauthorized
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		user = &models.User{UserID: userID, Username: username, Credential: credential}
		if err := s.Users.Create(ctx, user); err != nil {
			return "", err
		}
	} else if user.Credential != credential {
		return "", models.ErrUnauthorized
	}

	token := s.Tokens.NewID()
	if err := s.Sessions.Put(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}

// Authenticate resolves a session token to its user, with the credential
// stripped. A missing token, an expired session or a vanished user record
// all come back as ErrUnauthorized, never as an anonymous pass.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, models.ErrUnauthorized
	}

	userID, err := s.Sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, models.ErrUnauthorized
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUnauthorized
	}

	user.Credential = ""
	return user, nil
}

// Logout deletes the session unconditionally; logging out an absent or
// expired token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, token)
}

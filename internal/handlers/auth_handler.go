package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/gin-gonic/gin"
)

const sessionCookie = "session"

type AuthService interface {
	Login(ctx context.Context, userID, username, credential string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type loginRequest struct {
	UserID     string `json:"user_id" form:"user_id"`
	Username   string `json:"username" form:"username"`
	Credential string `json:"credential" form:"credential"`
}

type AuthHandler struct {
	Service    AuthService
	SessionTTL time.Duration
}

func NewAuthHandler(s AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{Service: s, SessionTTL: sessionTTL}
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.UserID, req.Username, req.Credential)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(sessionCookie, token, int(h.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user_id": req.UserID})
}

// POST /logout
//
// Always clears the cookie, even when the session already expired.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(sessionCookie)
	if err := h.Service.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GET /profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, user)
}

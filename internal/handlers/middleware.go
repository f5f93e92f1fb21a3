package handlers

import (
	"errors"
	"net/http"

	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// AuthRequired resolves the session cookie to a user and aborts with 401
// when there is no valid session.
func AuthRequired(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(sessionCookie)

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, models.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by the middleware, or nil
// when the middleware did not run.
func CurrentUser(c *gin.Context) *models.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "atelier_session"

// UserIDKey is the context key holding the authenticated user's id.
const UserIDKey = "user_id"

// TokenValidator validates a session token and returns the user id it
// carries.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// CurrentUser resolves the session cookie into a user id and stores it in
// the request context. It never aborts: pages render for visitors too, and
// an invalid or expired cookie is the same as no cookie.
func CurrentUser(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if userID, err := validator.ValidateToken(token); err == nil {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// RequireUser redirects to the login page when the request carries no
// authenticated user. Not an error: a terminal redirect for this request.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(UserIDKey); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id from the context.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	val, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

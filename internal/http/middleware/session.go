package middleware

import (
	"errors"
	"net/http"

	"todolist_api/internal/session"

	"github.com/gin-gonic/gin"
)

// Context keys set by the session middleware.
const (
	CtxSessionUser  = "session_user"
	CtxSessionToken = "session_token"
)

// Session gates a route group on a valid session cookie. The resolved
// user summary is placed in the gin context for handlers.
func Session(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		user, err := store.Resolve(c.Request.Context(), token)
		if err != nil {
			// an unknown or expired token is not the same as the
			// session store being unreachable
			if errors.Is(err, session.ErrNoSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "session store error"})
			return
		}

		c.Set(CtxSessionUser, user)
		c.Set(CtxSessionToken, token)
		c.Next()
	}
}

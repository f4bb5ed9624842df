package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session_id"

// Session ensures every request carries a session identifier cookie. New
// visitors get a generated ID; the cookie is HTTP-only and scoped to the API.
func Session(cookieName string) gin.HandlerFunc {
	if cookieName == "" {
		cookieName = "sb_session"
	}
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sessionID, 0, "/", "", false, true)
		}
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// SessionID returns the request's session identifier.
func SessionID(c *gin.Context) string {
	if v, exists := c.Get(sessionContextKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionTokenCookie is the cookie carrying the admin session token.
const SessionTokenCookie = "session_token"

// SessionChecker is the read-only session probe the route guard relies on.
type SessionChecker interface {
	CheckSession(ctx context.Context, token string) bool
}

// RequireSession guards admin-restricted routes. Anonymous requests are
// redirected to the login entry point before any admin handler runs;
// this executes once per incoming request at the edge, independent of
// any in-page auth checks.
func RequireSession(sessions SessionChecker, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Protected responses must not be cached.
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")

		if !sessions.CheckSession(c.Request.Context(), SessionToken(c)) {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionToken extracts the session token from the request: the session
// cookie first, then a bearer Authorization header.
func SessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionTokenCookie); err == nil && token != "" {
		return token
	}
	const prefix = "Bearer "
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, prefix) {
		return strings.TrimPrefix(auth, prefix)
	}
	return ""
}

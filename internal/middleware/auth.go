package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vaani_web/internal/session"
)

// IdentityKey is the gin context key under which RequireAuth stores the
// authenticated session.Identity.
const IdentityKey = "identity"

// RequireAuth redirects anonymous clients to the login page. Authenticated
// requests continue with the identity available in the gin context.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := sessions.Identity(c.Request)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Set(IdentityKey, ident)
		c.Next()
	}
}

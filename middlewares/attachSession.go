package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/auth"
)

// SessionKey is where AttachSession stores the restored session in the gin
// context.
const SessionKey = "session"

// AttachSession restores the caller's session from a bearer token when one is
// present. An absent or invalid token simply leaves the request anonymous;
// browsing and the cart never require a session.
func AttachSession(provider auth.Provider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			if session, err := provider.SessionFromToken(token); err == nil {
				ctx.Set(SessionKey, session)
			}
		}
		ctx.Next()
	}
}

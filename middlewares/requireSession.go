package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireSession gates an endpoint on a signed-in session. It runs after
// AttachSession and mirrors the storefront's login dialog: the caller is told
// to log in, nothing else happens.
func RequireSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, exists := ctx.Get(SessionKey); !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Please login to your account to proceed with the checkout process.",
			})
			return
		}
		ctx.Next()
	}
}

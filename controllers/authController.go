package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/auth"
	"github.com/sahil-jamadar/new-couture-project/middlewares"
)

type AuthController struct {
	provider auth.Provider
}

func NewAuthController(provider auth.Provider) *AuthController {
	return &AuthController{provider: provider}
}

// GetSession restores the caller's session. An anonymous caller gets a null
// session, not an error; the client just renders the signed-out state.
func (ac *AuthController) GetSession(ctx *gin.Context) {
	if session, exists := ctx.Get(middlewares.SessionKey); exists {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"session": session})
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"session": nil})
}

// SignOut asks the identity provider to revoke the caller's token. Provider
// failures surface as a notification and nothing more.
func (ac *AuthController) SignOut(ctx *gin.Context) {
	token := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgSignedOut})
		return
	}

	if err := ac.provider.SignOut(ctx.Request.Context(), token); err != nil {
		log.Println("Error logging out:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgSignOutFailed)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgSignedOut})
}

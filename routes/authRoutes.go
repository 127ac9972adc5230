package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/controllers"
)

func AuthRoutes(server *gin.Engine, ac *controllers.AuthController) {
	server.GET("/auth/session", ac.GetSession)
	server.POST("/auth/signout", ac.SignOut)
}

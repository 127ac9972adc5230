package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.POST("/tailoring", controllers.SubmitTailoringRequest)
}

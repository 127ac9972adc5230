package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/controllers"
)

func ProductRoutes(server *gin.Engine, pc *controllers.ProductController) {
	server.GET("/product", pc.GetProducts)
	server.GET("/product/:id", pc.GetProduct)
	server.GET("/product/:id/share", pc.GetProductShareLinks)
	server.GET("/brand/:name", pc.GetBrandProducts)
}

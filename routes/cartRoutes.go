package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/controllers"
	"github.com/sahil-jamadar/new-couture-project/middlewares"
)

func CartRoutes(server *gin.Engine, cc *controllers.CartController) {
	server.GET("/cart/:cartId", cc.GetCart)
	server.POST("/cart/:cartId/items", cc.AddCartItem)
	server.PATCH("/cart/:cartId/items/:itemId", cc.UpdateCartItem)
	server.DELETE("/cart/:cartId/items/:itemId", cc.RemoveCartItem)
	server.DELETE("/cart/:cartId", cc.ClearCart)
	server.GET("/cart/:cartId/summary", cc.GetCartSummary)
	server.GET("/cart/:cartId/count", cc.GetCartCount)
	server.POST("/cart/:cartId/checkout", middlewares.RequireSession(), cc.Checkout)
}

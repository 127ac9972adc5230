package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/controllers"
)

func SearchRoutes(server *gin.Engine, sc *controllers.SearchController) {
	server.GET("/search", sc.Search)
	server.GET("/search/suggestions", sc.GetSuggestions)
}

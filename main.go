package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/auth"
	"github.com/sahil-jamadar/new-couture-project/cart"
	"github.com/sahil-jamadar/new-couture-project/controllers"
	"github.com/sahil-jamadar/new-couture-project/initializers"
	"github.com/sahil-jamadar/new-couture-project/middlewares"
	"github.com/sahil-jamadar/new-couture-project/routes"
	"github.com/sahil-jamadar/new-couture-project/search"
)

func main() {
	initializers.LoadEnv()

	catalogData, err := initializers.LoadCatalog()
	if err != nil {
		log.Fatal("Failed to load catalog: ", err)
	}

	cartStorage, err := initializers.OpenCartStorage()
	if err != nil {
		log.Fatal("Failed to open cart storage: ", err)
	}

	provider := auth.NewHTTPProvider(auth.Config{
		Secret:     os.Getenv("AUTH_SECRET"),
		SignOutURL: os.Getenv("AUTH_SIGNOUT_URL"),
	})

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://www.thecoutures.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.AttachSession(provider))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(provider))
	routes.ProductRoutes(server, controllers.NewProductController(catalogData))
	routes.SearchRoutes(server, controllers.NewSearchController(search.NewEngine(catalogData)))
	routes.CartRoutes(server, controllers.NewCartController(cart.NewStore(cartStorage)))
	server.Run()
}

package routes

import (
	"github.com/HazemSabry/KFC-like-Project/controllers"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine) {
	server.GET("/menu", controllers.GetMenu)
	server.GET("/menu/:id", controllers.GetMenuItem)
	server.GET("/categories", controllers.GetCategories)
	server.GET("/deals", controllers.GetDeals)
	server.GET("/offers", controllers.GetOffers)
	server.GET("/locations", controllers.GetLocations)
}

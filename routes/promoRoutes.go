package routes

import (
	"github.com/HazemSabry/KFC-like-Project/controllers"
	"github.com/gin-gonic/gin"
)

func PromoRoutes(server *gin.Engine) {
	server.POST("/promo/apply", controllers.ApplyPromo)
}

package routes

import (
	"github.com/HazemSabry/KFC-like-Project/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}

package routes

import (
	"github.com/HazemSabry/KFC-like-Project/controllers"
	"github.com/HazemSabry/KFC-like-Project/middlewares"
	"github.com/gin-gonic/gin"
)

func AccountRoutes(server *gin.Engine) {
	server.PUT("/account/preferences", middlewares.RequireAuth(), controllers.UpdatePreferences)
	server.GET("/notifications", middlewares.RequireAuth(), controllers.GetNotifications)
}

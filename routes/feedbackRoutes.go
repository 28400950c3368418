package routes

import (
	"github.com/HazemSabry/KFC-like-Project/controllers"
	"github.com/gin-gonic/gin"
)

func FeedbackRoutes(server *gin.Engine) {
	server.POST("/feedback", controllers.SubmitFeedback)
	server.POST("/newsletter/subscribe", controllers.SubscribeNewsletter)
}

package routes

import (
	"github.com/HazemSabry/KFC-like-Project/controllers"
	"github.com/HazemSabry/KFC-like-Project/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/order", controllers.CreateOrder)
	server.GET("/order/:orderId", controllers.GetOrderStatus)
	server.GET("/user/:userId/orders", middlewares.RequireAuth(), controllers.GetOrdersByCustomer)
	server.PATCH("/order/:orderId/status", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateOrderStatus)
}

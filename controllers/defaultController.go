package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the restaurant ordering API.

The following are the endpoints for this API:

MENU
- GET "/menu" - Browse the menu (supports ?search=, ?categoryId=, pagination)
- GET "/menu/{id}" - Get a menu item by ID
- GET "/categories" - List menu categories
- GET "/deals" - List active deals
- GET "/offers" - List currently running offers
- GET "/locations" - List restaurant locations

ORDER
- POST "/order" - Place a new order
- GET "/order/{orderId}" - Get order status with its items
- GET "/user/{userId}/orders" - Order history for a customer
- PATCH "/order/{orderId}/status" - Update order status (admin)

PROMO
- POST "/promo/apply" - Apply a promo code to an order total

AUTH
- POST "/auth/register" - Create an account
- POST "/auth/login" - Log in
- POST "/auth/logout" - Log out

ACCOUNT
- PUT "/account/preferences" - Update preferences
- GET "/notifications" - List your notifications

OTHER
- POST "/feedback" - Submit feedback
- POST "/newsletter/subscribe" - Subscribe to the newsletter`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

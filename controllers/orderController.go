package controllers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/HazemSabry/KFC-like-Project/initializers"
	"github.com/HazemSabry/KFC-like-Project/models"
	"github.com/HazemSabry/KFC-like-Project/services"
	"github.com/HazemSabry/KFC-like-Project/utils"
	"github.com/gin-gonic/gin"
)

// Send the order confirmation email. Failure never affects the stored order.
func sendOrderConfirmationEmail(order *services.OrderRequest, orderID uint) error {
	emailData := utils.OrderEmailData{
		OrderID: orderID,
		Status:  models.OrderStatusPending,
		Total:   order.TotalAmount,
	}
	for _, item := range order.Items {
		emailData.Items = append(emailData.Items, utils.OrderEmailItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(order.Email, "Your Order Confirmation", emailData, templatePath)
}

// CreateOrder persists a submitted cart as an order and dispatches the
// confirmation email and webhook after the transaction has committed.
func CreateOrder(ctx *gin.Context) {
	var orderRequest services.OrderRequest
	if err := ctx.ShouldBindJSON(&orderRequest); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := services.PlaceOrder(initializers.DB, &orderRequest)
	if err != nil {
		var validationErr services.ValidationError
		if errors.As(err, &validationErr) {
			sendErrorResponse(ctx, http.StatusBadRequest, result.Message)
			return
		}
		log.Println("Order transaction error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, result.Message)
		return
	}

	if err := sendOrderConfirmationEmail(&orderRequest, result.OrderID); err != nil {
		log.Println("Error sending order confirmation email:", err)
	}
	if err := utils.NotifyOrderEvent(result.OrderID, models.OrderStatusPending, orderRequest.Email); err != nil {
		log.Println("Error delivering order webhook:", err)
	}
	if orderRequest.CustomerID != nil {
		notification := models.Notification{
			UserID:  *orderRequest.CustomerID,
			OrderID: &result.OrderID,
			Message: "Your order has been received and is now Pending.",
		}
		if err := initializers.DB.Create(&notification).Error; err != nil {
			log.Println("Error saving order notification:", err)
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": result.Message,
		"orderId": result.OrderID,
		"order":   orderRequest,
	})
}

func GetOrderStatus(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	result, err := services.GetOrderStatus(initializers.DB, uint(orderId))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, result.Message)
			return
		}
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, result.Message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"order":   result.Order,
	})
}

func GetOrdersByCustomer(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	authID, ok := authenticatedUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}
	if uint(userId) != authID && authenticatedRole(ctx) != "admin" {
		sendErrorResponse(ctx, http.StatusForbidden, "You can only view your own orders")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("OrderItems").
		Where("customer_id = ?", userId).
		Order("created_at " + sortOrder).
		Find(&orders)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
	})
}

// UpdateOrderStatus overwrites the order status. Any status value from the
// client is stored as-is; there is no transition validation.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	result, err := services.UpdateOrderStatus(initializers.DB, uint(orderId), orderStatusData.Status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, result.Message)
			return
		}
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, result.Message)
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err == nil {
		if err := utils.NotifyOrderEvent(order.ID, order.Status, order.Email); err != nil {
			log.Println("Error delivering order webhook:", err)
		}
		if order.CustomerID != nil {
			notification := models.Notification{
				UserID:  *order.CustomerID,
				OrderID: &order.ID,
				Message: "Your order is now " + order.Status + ".",
			}
			if err := initializers.DB.Create(&notification).Error; err != nil {
				log.Println("Error saving order notification:", err)
			}
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": result.Message,
	})
}

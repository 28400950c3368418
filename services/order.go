package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/HazemSabry/KFC-like-Project/models"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type OrderItemRequest struct {
	ItemID   int     `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderRequest struct {
	CustomerID      *uint              `json:"customerId"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Phone           string             `json:"phone"`
	Email           string             `json:"email"`
	TotalAmount     float64            `json:"totalAmount"`
	PaymentMethod   string             `json:"paymentMethod"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderResult struct {
	Success bool   `json:"success"`
	OrderID uint   `json:"orderId,omitempty"`
	Message string `json:"message"`
}

func ValidateOrderRequest(req *OrderRequest) error {
	if req.DeliveryAddress == "" {
		return ValidationError{Field: "deliveryAddress", Message: "delivery address is required"}
	}
	if req.Phone == "" {
		return ValidationError{Field: "phone", Message: "phone number is required"}
	}
	if req.Email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if len(req.Items) == 0 {
		return ValidationError{Field: "items", Message: "an order must contain at least one item"}
	}
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "quantity must be greater than zero"}
		}
		if item.Price < 0 {
			return ValidationError{Field: fmt.Sprintf("items[%d].price", i), Message: "price cannot be negative"}
		}
	}
	return nil
}

// PlaceOrder persists an order header and its line items in a single
// transaction. The caller-supplied total is stored as submitted and is not
// recomputed from the line items. Confirmation email and webhook dispatch are
// the caller's concern and happen after commit, never inside the transaction.
func PlaceOrder(db *gorm.DB, req *OrderRequest) (OrderResult, error) {
	if err := ValidateOrderRequest(req); err != nil {
		return OrderResult{Message: err.Error()}, err
	}

	order := models.Order{
		CustomerID:      req.CustomerID,
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
		Email:           req.Email,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.OrderStatusPending,
		OrderDate:       time.Now(),
	}

	tx := db.Begin()
	if tx.Error != nil {
		return OrderResult{Message: "Failed to start order transaction."}, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return OrderResult{Message: "Failed to create order."}, err
	}

	for _, item := range req.Items {
		line := models.OrderItem{
			OrderID:  int(order.ID),
			ItemID:   item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		if err := tx.Create(&line).Error; err != nil {
			tx.Rollback()
			return OrderResult{Message: "Failed to save order items."}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return OrderResult{Message: "Failed to save order."}, err
	}

	return OrderResult{
		Success: true,
		OrderID: order.ID,
		Message: "Order placed successfully.",
	}, nil
}

type OrderStatusItem struct {
	ItemID      int     `json:"itemId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderSummary struct {
	OrderID         uint              `json:"orderId"`
	Status          string            `json:"status"`
	OrderDate       time.Time         `json:"orderDate"`
	DeliveryAddress string            `json:"deliveryAddress"`
	Phone           string            `json:"phone"`
	Email           string            `json:"email"`
	TotalAmount     float64           `json:"totalAmount"`
	PaymentMethod   string            `json:"paymentMethod"`
	Items           []OrderStatusItem `json:"items"`
}

type OrderStatusResult struct {
	Success bool          `json:"success"`
	Order   *OrderSummary `json:"order,omitempty"`
	Message string        `json:"message"`
}

// GetOrderStatus fetches an order and its line items, joined against the
// current menu for display names and descriptions. The snapshot name is kept
// as a fallback for items removed from the menu since the order was placed.
func GetOrderStatus(db *gorm.DB, orderID uint) (OrderStatusResult, error) {
	var order models.Order
	if err := db.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderStatusResult{Message: "Order not found."}, ErrOrderNotFound
		}
		return OrderStatusResult{Message: "Unable to fetch order."}, err
	}

	itemIDs := make([]int, 0, len(order.OrderItems))
	for _, line := range order.OrderItems {
		itemIDs = append(itemIDs, line.ItemID)
	}

	menuByID := make(map[int]models.MenuItem, len(itemIDs))
	if len(itemIDs) > 0 {
		var menuItems []models.MenuItem
		if err := db.Where("id IN ?", itemIDs).Find(&menuItems).Error; err != nil {
			return OrderStatusResult{Message: "Unable to fetch order items."}, err
		}
		for _, mi := range menuItems {
			menuByID[int(mi.ID)] = mi
		}
	}

	summary := OrderSummary{
		OrderID:         order.ID,
		Status:          order.Status,
		OrderDate:       order.OrderDate,
		DeliveryAddress: order.DeliveryAddress,
		Phone:           order.Phone,
		Email:           order.Email,
		TotalAmount:     order.TotalAmount,
		PaymentMethod:   order.PaymentMethod,
	}
	for _, line := range order.OrderItems {
		item := OrderStatusItem{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
		if mi, ok := menuByID[line.ItemID]; ok {
			item.Name = mi.Name
			item.Description = mi.Description
		}
		summary.Items = append(summary.Items, item)
	}

	return OrderStatusResult{
		Success: true,
		Order:   &summary,
		Message: "Order fetched successfully.",
	}, nil
}

// UpdateOrderStatus overwrites the status field unconditionally. There is no
// transition check: any stored status may be replaced by any other.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status string) (OrderResult, error) {
	if status == "" {
		err := ValidationError{Field: "status", Message: "status is required"}
		return OrderResult{Message: err.Error()}, err
	}

	result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		return OrderResult{Message: "Failed to update order status."}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderResult{Message: "Order not found."}, ErrOrderNotFound
	}

	return OrderResult{
		Success: true,
		OrderID: orderID,
		Message: "Order status updated successfully.",
	}, nil
}

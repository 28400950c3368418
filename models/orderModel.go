package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusPreparing = "Preparing"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	gorm.Model
	CustomerID      *uint       `json:"customerId"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email"`
	TotalAmount     float64     `json:"totalAmount"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          string      `json:"status"`
	OrderDate       time.Time   `json:"orderDate"`
	OrderItems      []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots the unit price at order time, so later menu price
// changes never affect historical orders.
type OrderItem struct {
	gorm.Model
	OrderID  int     `json:"orderId"`
	ItemID   int     `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

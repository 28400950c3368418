package models

import "gorm.io/gorm"

type Feedback struct {
	gorm.Model
	UserID  *uint  `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Message string `json:"message" binding:"required"`
}

type NewsletterSubscriber struct {
	gorm.Model
	Email string `json:"email" gorm:"uniqueIndex;size:191"`
}

type Notification struct {
	gorm.Model
	UserID  uint   `json:"userId"`
	OrderID *uint  `json:"orderId"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Deal is a fixed-price bundle of menu items (e.g. a family bucket).
type Deal struct {
	gorm.Model
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"required"`
	ImageUrl    string         `json:"imageUrl"`
	Items       datatypes.JSON `json:"items"`
	Active      bool           `json:"active"`
}

// Offer is a time-limited promotional banner shown on the site.
type Offer struct {
	gorm.Model
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	ImageUrl    string    `json:"imageUrl"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Active      bool      `json:"active"`
}

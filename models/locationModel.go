package models

import "gorm.io/gorm"

type Location struct {
	gorm.Model
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city"`
	Phone        string  `json:"phone"`
	OpeningHours string  `json:"openingHours"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

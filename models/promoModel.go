package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type PromoCode struct {
	gorm.Model
	Code          string    `json:"code" gorm:"uniqueIndex;size:64"`
	DiscountType  string    `json:"discountType"`
	DiscountValue float64   `json:"discountValue"`
	MinimumOrder  float64   `json:"minimumOrder"`
	ValidFrom     time.Time `json:"validFrom"`
	ValidUntil    time.Time `json:"validUntil"`
	Active        bool      `json:"active"`
}

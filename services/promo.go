package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/HazemSabry/KFC-like-Project/models"
	"gorm.io/gorm"
)

var (
	ErrPromoInvalidOrExpired = errors.New("promo code is invalid or expired")
	ErrPromoMinimumNotMet    = errors.New("order total below promo code minimum")
)

type PromoResult struct {
	Success        bool    `json:"success"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
	Message        string  `json:"message"`
}

// EvaluatePromo applies a loaded promo code to an order total. Evaluation is
// pure: it never records a redemption, so repeated calls with the same inputs
// yield the same result. The discount is not clamped — a fixed discount larger
// than the total produces a negative final amount, which the caller must
// handle.
func EvaluatePromo(promo models.PromoCode, totalAmount float64, now time.Time) (PromoResult, error) {
	if !promo.Active || now.Before(promo.ValidFrom) || now.After(promo.ValidUntil) {
		return PromoResult{Message: "Promo code is invalid or has expired."}, ErrPromoInvalidOrExpired
	}

	if totalAmount < promo.MinimumOrder {
		return PromoResult{
			Message: fmt.Sprintf("A minimum order of %.2f is required to use this promo code.", promo.MinimumOrder),
		}, ErrPromoMinimumNotMet
	}

	var discount float64
	if promo.DiscountType == models.DiscountTypePercentage {
		discount = totalAmount * promo.DiscountValue / 100
	} else {
		discount = promo.DiscountValue
	}

	return PromoResult{
		Success:        true,
		DiscountAmount: discount,
		FinalAmount:    totalAmount - discount,
		Message:        "Promo code applied successfully.",
	}, nil
}

// ApplyPromo looks up a promo code and evaluates it against totalAmount. An
// unknown code is reported the same way as an expired one, so callers cannot
// probe for which codes exist.
func ApplyPromo(db *gorm.DB, code string, totalAmount float64) (PromoResult, error) {
	var promo models.PromoCode
	if err := db.Where("code = ?", code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PromoResult{Message: "Promo code is invalid or has expired."}, ErrPromoInvalidOrExpired
		}
		return PromoResult{Message: "Unable to look up promo code."}, err
	}

	return EvaluatePromo(promo, totalAmount, time.Now())
}

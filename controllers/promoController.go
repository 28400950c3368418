package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/HazemSabry/KFC-like-Project/initializers"
	"github.com/HazemSabry/KFC-like-Project/services"
	"github.com/gin-gonic/gin"
)

// ApplyPromo evaluates a promo code against a submitted order total. The
// response distinguishes an invalid or expired code from a total that does
// not meet the code's minimum.
func ApplyPromo(ctx *gin.Context) {
	var promoData struct {
		Code        string  `json:"code" binding:"required"`
		TotalAmount float64 `json:"totalAmount"`
	}
	if err := ctx.ShouldBindJSON(&promoData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	result, err := services.ApplyPromo(initializers.DB, promoData.Code, promoData.TotalAmount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPromoInvalidOrExpired):
			sendErrorResponse(ctx, http.StatusNotFound, result.Message)
		case errors.Is(err, services.ErrPromoMinimumNotMet):
			sendErrorResponse(ctx, http.StatusUnprocessableEntity, result.Message)
		default:
			log.Println("Promo lookup error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, result.Message)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":        true,
		"message":        result.Message,
		"discountAmount": result.DiscountAmount,
		"finalAmount":    result.FinalAmount,
	})
}

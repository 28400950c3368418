package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/HazemSabry/KFC-like-Project/initializers"
	"github.com/HazemSabry/KFC-like-Project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SubmitFeedback(ctx *gin.Context) {
	var feedback models.Feedback
	if err := ctx.ShouldBindJSON(&feedback); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := initializers.DB.Create(&feedback).Error; err != nil {
		log.Println("Error saving feedback:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to submit feedback")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for your feedback!",
	})
}

func SubscribeNewsletter(ctx *gin.Context) {
	var subscribeData struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&subscribeData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.NewsletterSubscriber
	err := initializers.DB.Where("email = ?", subscribeData.Email).First(&existing).Error
	if err == nil {
		sendErrorResponse(ctx, http.StatusConflict, "This email is already subscribed")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	subscriber := models.NewsletterSubscriber{Email: subscribeData.Email}
	if err := initializers.DB.Create(&subscriber).Error; err != nil {
		log.Println("Error saving subscriber:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Subscribed to the newsletter successfully.",
	})
}

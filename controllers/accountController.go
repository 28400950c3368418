package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/HazemSabry/KFC-like-Project/initializers"
	"github.com/HazemSabry/KFC-like-Project/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/datatypes"
)

// authenticatedUserID reads the user id from the claims RequireAuth stored in
// the context.
func authenticatedUserID(ctx *gin.Context) (uint, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return 0, false
	}

	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}

	return uint(id), true
}

func authenticatedRole(ctx *gin.Context) string {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return ""
	}

	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	role, _ := claims["role"].(string)
	return role
}

// UpdatePreferences replaces the caller's stored preference document and
// newsletter opt-in flag.
func UpdatePreferences(ctx *gin.Context) {
	userId, ok := authenticatedUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var preferencesData struct {
		Preferences     map[string]any `json:"preferences"`
		SubscribeToNews *bool          `json:"subscribeToNews"`
	}
	if err := ctx.ShouldBindJSON(&preferencesData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	updates := map[string]any{}
	if preferencesData.Preferences != nil {
		raw, err := json.Marshal(preferencesData.Preferences)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
		updates["preferences"] = datatypes.JSON(raw)
	}
	if preferencesData.SubscribeToNews != nil {
		updates["subscribe_to_news"] = *preferencesData.SubscribeToNews
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No preferences provided")
		return
	}

	result := initializers.DB.Model(&models.User{}).Where("id = ?", userId).Updates(updates)
	if result.Error != nil {
		log.Println("Error updating preferences:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update preferences")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Preferences updated successfully.",
	})
}

// GetNotifications lists the caller's notifications, newest first.
func GetNotifications(ctx *gin.Context) {
	userId, ok := authenticatedUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var notifications []models.Notification
	result := initializers.DB.
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&notifications)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch notifications")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":       true,
		"notifications": notifications,
	})
}

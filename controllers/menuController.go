package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/HazemSabry/KFC-like-Project/initializers"
	"github.com/HazemSabry/KFC-like-Project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Menu handlers
func GetMenu(ctx *gin.Context) {
	var items []models.MenuItem

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.MenuItem{})

	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if category := ctx.Query("categoryId"); category != "" {
		query = query.Where("category_id = ?", category)
	}

	if result := query.Limit(limit).Offset(offset).Find(&items); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch menu")
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.MenuItem{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("name LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if category := ctx.Query("categoryId"); category != "" {
		countQuery = countQuery.Where("category_id = ?", category)
	}
	countQuery.Count(&count)

	totalPages := math.Ceil(float64(count) / float64(limit))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"menu":    items,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

func GetMenuItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse menu item id")
		return
	}

	var item models.MenuItem
	if result := initializers.DB.First(&item, itemId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Menu item not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch menu item")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "item": item})
}

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Order("display_order asc").Find(&categories); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch categories")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "categories": categories})
}

func GetDeals(ctx *gin.Context) {
	var deals []models.Deal
	if result := initializers.DB.Where("active = ?", true).Find(&deals); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch deals")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "deals": deals})
}

func GetOffers(ctx *gin.Context) {
	now := time.Now()

	var offers []models.Offer
	result := initializers.DB.
		Where("active = ? AND starts_at <= ? AND ends_at >= ?", true, now, now).
		Find(&offers)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch offers")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "offers": offers})
}

func GetLocations(ctx *gin.Context) {
	var locations []models.Location
	if result := initializers.DB.Find(&locations); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch locations")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "locations": locations})
}

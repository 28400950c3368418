package initializers

import (
	"log"

	"github.com/HazemSabry/KFC-like-Project/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Deal{},
		&models.Offer{},
		&models.Location{},
		&models.Order{},
		&models.OrderItem{},
		&models.PromoCode{},
		&models.Feedback{},
		&models.NewsletterSubscriber{},
		&models.Notification{},
	)
	log.Println("Database synced successfully.")
}

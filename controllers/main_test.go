package controllers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HazemSabry/KFC-like-Project/initializers"
	"github.com/HazemSabry/KFC-like-Project/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// useTestDB points the package's shared DB handle at a throwaway store for
// the duration of a test.
func useTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PromoCode{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatal(err)
	}
	initializers.DB = db
	return db
}

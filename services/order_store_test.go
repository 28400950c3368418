package services

import (
	"path/filepath"
	"testing"

	"github.com/HazemSabry/KFC-like-Project/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, tables ...any) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "orders.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(tables...))
	return db
}

func TestPlaceOrderPersistsHeaderAndLineItems(t *testing.T) {
	db := newTestDB(t, &models.Order{}, &models.OrderItem{})

	req := validOrderRequest()
	result, err := PlaceOrder(db, req)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotZero(t, result.OrderID)

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.EqualValues(t, 1, orderCount)
	assert.EqualValues(t, len(req.Items), itemCount)

	var lines []models.OrderItem
	require.NoError(t, db.Find(&lines).Error)
	for _, line := range lines {
		assert.EqualValues(t, result.OrderID, line.OrderID)
	}

	var order models.Order
	require.NoError(t, db.First(&order, result.OrderID).Error)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, req.TotalAmount, order.TotalAmount, 1e-9)
}

func TestPlaceOrderRollsBackWhenLineItemInsertFails(t *testing.T) {
	db := newTestDB(t, &models.Order{}, &models.OrderItem{})
	// With the line-item table gone, the header insert succeeds but the first
	// line-item insert fails mid-transaction.
	require.NoError(t, db.Migrator().DropTable(&models.OrderItem{}))

	result, err := PlaceOrder(db, validOrderRequest())
	assert.Error(t, err)
	assert.False(t, result.Success)
	assert.Zero(t, result.OrderID)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.EqualValues(t, 0, orderCount)
}

func TestGetOrderStatusNotFound(t *testing.T) {
	db := newTestDB(t, &models.Order{}, &models.OrderItem{}, &models.MenuItem{})

	result, err := GetOrderStatus(db, 9999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.False(t, result.Success)
	assert.Nil(t, result.Order)
	assert.NotEmpty(t, result.Message)
}

func TestGetOrderStatusJoinsCurrentMenu(t *testing.T) {
	db := newTestDB(t, &models.Order{}, &models.OrderItem{}, &models.MenuItem{})

	menuItem := models.MenuItem{
		Name:        "Zinger Burger",
		Description: "Spicy chicken fillet",
		Price:       5.99,
		Available:   true,
	}
	require.NoError(t, db.Create(&menuItem).Error)

	req := validOrderRequest()
	req.Items = []OrderItemRequest{
		{ItemID: int(menuItem.ID), Name: "Old Snapshot Name", Quantity: 2, Price: 5.99},
	}
	placed, err := PlaceOrder(db, req)
	require.NoError(t, err)

	result, err := GetOrderStatus(db, placed.OrderID)
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, "Zinger Burger", result.Order.Items[0].Name)
	assert.Equal(t, "Spicy chicken fillet", result.Order.Items[0].Description)
	assert.Equal(t, 2, result.Order.Items[0].Quantity)
}

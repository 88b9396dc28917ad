package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/catalog-next/internal/constants"
	"github.com/catalog-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func createProduct(t *testing.T, db *gorm.DB, title string, onSale bool, price string, skuTitles ...string) *models.Product {
	t.Helper()
	product := &models.Product{
		Title:       title,
		Description: title + " description",
		OnSale:      onSale,
		Price:       models.MustMoney(price),
		Rating:      5,
	}
	for _, skuTitle := range skuTitles {
		product.SKUs = append(product.SKUs, models.ProductSKU{
			Title:       skuTitle,
			Description: "variant",
			Price:       models.MustMoney(price),
			Stock:       10,
		})
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: email, PasswordHash: "x", Status: constants.UserStatusActive}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createPaidOrderItem(t *testing.T, db *gorm.DB, userID uint, product *models.Product, amount int) *models.OrderItem {
	t.Helper()
	paidAt := time.Now()
	order := &models.Order{
		No:          fmt.Sprintf("T%d-%d", userID, time.Now().UnixNano()),
		UserID:      userID,
		TotalAmount: product.Price,
		Status:      constants.OrderStatusPaid,
		PaidAt:      &paidAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	item := &models.OrderItem{
		OrderID:      order.ID,
		ProductID:    product.ID,
		ProductSKUID: product.SKUs[0].ID,
		Amount:       amount,
		Price:        product.Price,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}
	return item
}

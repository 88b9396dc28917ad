package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/catalog-next/internal/constants"
	"github.com/catalog-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, title string, onSale bool, price string, skuTitles ...string) *models.Product {
	t.Helper()
	product := &models.Product{Title: title, Description: title, OnSale: onSale, Price: models.MustMoney(price), Rating: 5}
	for _, skuTitle := range skuTitles {
		product.SKUs = append(product.SKUs, models.ProductSKU{Title: skuTitle, Price: models.MustMoney(price), Stock: 1})
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	user := &models.User{Email: email, Name: email, PasswordHash: hash, Status: constants.UserStatusActive}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedOrderItem(t *testing.T, db *gorm.DB, userID uint, product *models.Product, paid bool, amount int) *models.OrderItem {
	t.Helper()
	order := &models.Order{
		No:     fmt.Sprintf("S%d-%d", userID, time.Now().UnixNano()),
		UserID: userID,
		Status: constants.OrderStatusPendingPayment,
	}
	if paid {
		now := time.Now()
		order.PaidAt = &now
		order.Status = constants.OrderStatusPaid
	}
	require.NoError(t, db.Create(order).Error)
	item := &models.OrderItem{OrderID: order.ID, ProductID: product.ID, ProductSKUID: product.SKUs[0].ID, Amount: amount, Price: product.Price}
	require.NoError(t, db.Create(item).Error)
	return item
}

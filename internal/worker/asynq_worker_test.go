package worker

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/catalog-next/internal/config"
	"github.com/catalog-next/internal/models"
	"github.com/catalog-next/internal/provider"
	"github.com/catalog-next/internal/queue"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dsnUnsafe = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func newTestConsumer(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dsnUnsafe.ReplaceAllString(t.Name(), "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}
	cfg := &config.Config{}
	container := provider.NewContainerWithDB(cfg, db, nil)
	return NewConsumer(container), db
}

func TestHandleProductStatsRefreshRecomputesStats(t *testing.T) {
	consumer, db := newTestConsumer(t)

	product := models.Product{
		Title:  "Mug",
		OnSale: true,
		Price:  models.MustMoney("9.90"),
		Rating: 5,
		SKUs:   []models.ProductSKU{{Title: "White", Price: models.MustMoney("9.90"), Stock: 10}},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	user := models.User{Email: "buyer@example.com", Name: "buyer", Status: "active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	paidAt := time.Now().Add(-time.Hour)
	order := models.Order{No: "W-1", UserID: user.ID, Status: "paid", PaidAt: &paidAt, TotalAmount: models.MustMoney("19.80")}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	reviewedAt := time.Now()
	for _, rating := range []int{3, 4} {
		r := rating
		item := models.OrderItem{
			OrderID:      order.ID,
			ProductID:    product.ID,
			ProductSKUID: product.SKUs[0].ID,
			Amount:       1,
			Price:        models.MustMoney("9.90"),
			Rating:       &r,
			Review:       "ok",
			ReviewedAt:   &reviewedAt,
		}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("create order item failed: %v", err)
		}
	}

	task, err := queue.NewProductStatsRefreshTask(queue.ProductStatsRefreshPayload{ProductID: product.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleProductStatsRefresh(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	var refreshed models.Product
	if err := db.First(&refreshed, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if refreshed.ReviewCount != 2 {
		t.Fatalf("review count want 2 got %d", refreshed.ReviewCount)
	}
	if refreshed.Rating != 3.5 {
		t.Fatalf("rating want 3.5 got %v", refreshed.Rating)
	}
	if refreshed.SoldCount != 2 {
		t.Fatalf("sold count want 2 got %d", refreshed.SoldCount)
	}
}

func TestHandleProductStatsRefreshSkipsInvalidPayload(t *testing.T) {
	consumer, _ := newTestConsumer(t)

	if err := consumer.handleProductStatsRefresh(context.Background(), asynq.NewTask(queue.TaskProductStatsRefresh, []byte(`{"product_id":0}`))); err != nil {
		t.Fatalf("zero product id should be skipped, got %v", err)
	}

	err := consumer.handleProductStatsRefresh(context.Background(), asynq.NewTask(queue.TaskProductStatsRefresh, []byte(`not-json`)))
	if err == nil {
		t.Fatalf("expected error for malformed payload")
	}
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("malformed payload should not be retried, got %v", err)
	}
}

func TestNewServiceRequiresEnabledQueue(t *testing.T) {
	if _, err := NewService(&config.QueueConfig{Enabled: false}, &Consumer{}); !errors.Is(err, ErrQueueDisabled) {
		t.Fatalf("want ErrQueueDisabled, got %v", err)
	}
	if _, err := NewService(nil, &Consumer{}); !errors.Is(err, ErrQueueDisabled) {
		t.Fatalf("want ErrQueueDisabled for nil config, got %v", err)
	}
}

package main

import (
	"errors"
	"log"
	"time"

	"github.com/catalog-next/internal/config"
	"github.com/catalog-next/internal/constants"
	"github.com/catalog-next/internal/logger"
	"github.com/catalog-next/internal/models"
	"github.com/catalog-next/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedSKU struct {
	title string
	price string
	stock int
}

type seedProduct struct {
	title       string
	description string
	image       string
	onSale      bool
	skus        []seedSKU
}

var demoProducts = []seedProduct{
	{
		title:       "iPhone 15 Pro",
		description: "A17 Pro 芯片，钛金属设计",
		image:       "/images/iphone15pro.png",
		onSale:      true,
		skus: []seedSKU{
			{title: "Natural Titanium 256G", price: "7999.00", stock: 20},
			{title: "Blue Titanium 512G", price: "9999.00", stock: 8},
		},
	},
	{
		title:       "AirPods Pro",
		description: "主动降噪无线耳机",
		image:       "/images/airpods-pro.png",
		onSale:      true,
		skus: []seedSKU{
			{title: "USB-C", price: "1899.00", stock: 50},
		},
	},
	{
		title:       "机械键盘",
		description: "87 键热插拔，RGB 背光",
		image:       "/images/keyboard.png",
		onSale:      true,
		skus: []seedSKU{
			{title: "Red Switch", price: "399.00", stock: 30},
			{title: "Brown Switch", price: "429.00", stock: 30},
		},
	},
	{
		title:       "保温杯",
		description: "316 不锈钢，12 小时保温",
		image:       "/images/bottle.png",
		onSale:      true,
		skus: []seedSKU{
			{title: "White 500ml", price: "89.00", stock: 200},
			{title: "Black 750ml", price: "109.00", stock: 120},
		},
	},
	{
		title:       "旧款充电器",
		description: "已下架商品",
		image:       "/images/charger.png",
		onSale:      false,
		skus: []seedSKU{
			{title: "5V 2A", price: "29.00", stock: 0},
		},
	},
}

type seedUser struct {
	email    string
	name     string
	password string
	status   string
}

var demoUsers = []seedUser{
	{email: "alice@example.com", name: "Alice", password: "password123", status: constants.UserStatusActive},
	{email: "bob@example.com", name: "Bob", password: "password123", status: constants.UserStatusActive},
	{email: "carol@example.com", name: "Carol", password: "password123", status: constants.UserStatusDisabled},
}

var demoReviews = []string{
	"质量很好，物流也快",
	"和描述一致，值得购买",
	"包装有点简陋，东西不错",
	"第二次回购了",
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Server.Mode, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	products := seedProducts(stdLog)
	users := seedUsers(stdLog)
	seedOrders(stdLog, users, products)
	seedCoupons(stdLog)

	stdLog.Printf("Seed completed")
}

func seedProducts(stdLog *log.Logger) []models.Product {
	result := make([]models.Product, 0, len(demoProducts))
	for _, item := range demoProducts {
		var existing models.Product
		err := models.DB.Preload("SKUs").Where("title = ?", item.title).First(&existing).Error
		if err == nil {
			stdLog.Printf("Product already exists: %s", item.title)
			result = append(result, existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			stdLog.Printf("Failed to query product %s: %v", item.title, err)
			continue
		}

		product := models.Product{
			Title:       item.title,
			Description: item.description,
			Image:       item.image,
			OnSale:      item.onSale,
		}
		for i, sku := range item.skus {
			price := models.MustMoney(sku.price)
			if i == 0 || price.LessThan(product.Price.Decimal) {
				product.Price = price
			}
			product.SKUs = append(product.SKUs, models.ProductSKU{
				Title:       sku.title,
				Description: item.title + " " + sku.title,
				Price:       price,
				Stock:       sku.stock,
			})
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", item.title, err)
			continue
		}
		stdLog.Printf("Created product: %s", item.title)
		result = append(result, product)
	}
	return result
}

func seedUsers(stdLog *log.Logger) []models.User {
	result := make([]models.User, 0, len(demoUsers))
	for _, item := range demoUsers {
		var existing models.User
		err := models.DB.Where("email = ?", item.email).First(&existing).Error
		if err == nil {
			stdLog.Printf("User already exists: %s", item.email)
			result = append(result, existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			stdLog.Printf("Failed to query user %s: %v", item.email, err)
			continue
		}

		hash, err := service.HashPassword(item.password)
		if err != nil {
			stdLog.Printf("Failed to hash password for %s: %v", item.email, err)
			continue
		}
		user := models.User{
			Email:        item.email,
			Name:         item.name,
			PasswordHash: hash,
			Status:       item.status,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create user %s: %v", item.email, err)
			continue
		}
		stdLog.Printf("Created user: %s", item.email)
		result = append(result, user)
	}
	return result
}

// seedOrders 为每个有效用户生成一笔已支付订单，每个上架商品的首个 SKU 各一件，部分订单项附带评价
func seedOrders(stdLog *log.Logger, users []models.User, products []models.Product) {
	var count int64
	if err := models.DB.Model(&models.Order{}).Count(&count).Error; err != nil {
		stdLog.Printf("Failed to count orders: %v", err)
		return
	}
	if count > 0 {
		stdLog.Printf("Orders already exist, skip")
		return
	}

	now := time.Now()
	reviewIndex := 0
	for ui, user := range users {
		if user.Status != constants.UserStatusActive {
			continue
		}
		paidAt := now.Add(-time.Duration(72-ui*24) * time.Hour)
		order := models.Order{
			No:     uuid.NewString(),
			UserID: user.ID,
			Status: constants.OrderStatusCompleted,
			PaidAt: &paidAt,
		}
		for pi, product := range products {
			if !product.OnSale || len(product.SKUs) == 0 {
				continue
			}
			sku := product.SKUs[0]
			item := models.OrderItem{
				ProductID:    product.ID,
				ProductSKUID: sku.ID,
				Amount:       1,
				Price:        sku.Price,
			}
			if (pi+ui)%2 == 0 {
				rating := 5 - (reviewIndex % 2)
				reviewedAt := paidAt.Add(time.Duration(pi+1) * time.Hour)
				item.Rating = &rating
				item.Review = demoReviews[reviewIndex%len(demoReviews)]
				item.ReviewedAt = &reviewedAt
				reviewIndex++
			}
			order.TotalAmount = models.NewMoneyFromDecimal(order.TotalAmount.Add(sku.Price.Decimal))
			order.Items = append(order.Items, item)
		}
		if err := models.DB.Create(&order).Error; err != nil {
			stdLog.Printf("Failed to create order for %s: %v", user.Email, err)
			continue
		}
		stdLog.Printf("Created order %s for %s", order.No, user.Email)
	}

	refreshProductStats(stdLog, products)
}

func refreshProductStats(stdLog *log.Logger, products []models.Product) {
	for _, product := range products {
		var stats struct {
			AvgRating   float64
			ReviewCount int64
		}
		if err := models.DB.Model(&models.OrderItem{}).
			Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
			Where("product_id = ? AND reviewed_at IS NOT NULL", product.ID).
			Scan(&stats).Error; err != nil {
			stdLog.Printf("Failed to compute stats for %s: %v", product.Title, err)
			continue
		}
		var sold int64
		if err := models.DB.Model(&models.OrderItem{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("product_id = ?", product.ID).
			Scan(&sold).Error; err != nil {
			stdLog.Printf("Failed to compute sold count for %s: %v", product.Title, err)
			continue
		}
		updates := map[string]interface{}{
			"review_count": stats.ReviewCount,
			"sold_count":   sold,
		}
		if stats.ReviewCount > 0 {
			updates["rating"] = stats.AvgRating
		}
		if err := models.DB.Model(&models.Product{}).Where("id = ?", product.ID).Updates(updates).Error; err != nil {
			stdLog.Printf("Failed to update stats for %s: %v", product.Title, err)
		}
	}
}

func seedCoupons(stdLog *log.Logger) {
	now := time.Now()
	startsAt := now.Add(-24 * time.Hour)
	endsAt := now.Add(30 * 24 * time.Hour)
	expiredEnd := now.Add(-time.Hour)
	futureStart := now.Add(7 * 24 * time.Hour)
	limit := 100
	exhaustedLimit := 1

	coupons := []models.Coupon{
		{Name: "满100减10", Code: "SAVE10", Type: constants.CouponTypeFixed, Value: models.MustMoney("10"), MinAmount: models.MustMoney("100"), UsageLimit: &limit, StartsAt: &startsAt, EndsAt: &endsAt, Enabled: true},
		{Name: "九折券", Code: "OFF10", Type: constants.CouponTypePercent, Value: models.MustMoney("10"), StartsAt: &startsAt, EndsAt: &endsAt, Enabled: true},
		{Name: "已过期", Code: "EXPIRED", Type: constants.CouponTypeFixed, Value: models.MustMoney("5"), StartsAt: &startsAt, EndsAt: &expiredEnd, Enabled: true},
		{Name: "未开始", Code: "SOON", Type: constants.CouponTypeFixed, Value: models.MustMoney("5"), StartsAt: &futureStart, Enabled: true},
		{Name: "已领完", Code: "GONE", Type: constants.CouponTypeFixed, Value: models.MustMoney("5"), UsageLimit: &exhaustedLimit, UsedCount: 1, Enabled: true},
		{Name: "已停用", Code: "DISABLED", Type: constants.CouponTypeFixed, Value: models.MustMoney("5"), Enabled: false},
	}
	for _, coupon := range coupons {
		var existing models.Coupon
		err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error
		if err == nil {
			stdLog.Printf("Coupon already exists: %s", coupon.Code)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			stdLog.Printf("Failed to query coupon %s: %v", coupon.Code, err)
			continue
		}
		if err := models.DB.Create(&coupon).Error; err != nil {
			stdLog.Printf("Failed to create coupon %s: %v", coupon.Code, err)
			continue
		}
		stdLog.Printf("Created coupon: %s (%s)", coupon.Code, coupon.Name)
	}
}

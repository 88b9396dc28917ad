package repository

import (
	"errors"
	"time"

	"github.com/catalog-next/internal/models"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// OrderItemRepository 订单项与评价数据访问接口
type OrderItemRepository interface {
	ListRecentReviews(productID uint, limit int) ([]models.OrderItem, error)
	GetWithOrder(id uint) (*models.OrderItem, error)
	SubmitReview(id uint, rating int, review string, at time.Time) (int64, error)
	SyncOrderReviewed(orderID uint) error
	ReviewStats(productID uint) (ProductReviewStats, error)
	SoldCount(productID uint) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderItemRepository
}

// GormOrderItemRepository GORM 实现
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository 创建订单项仓库
func NewOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderItemRepository) WithTx(tx *gorm.DB) OrderItemRepository {
	if tx == nil {
		return r
	}
	return &GormOrderItemRepository{db: tx}
}

// Transaction 执行事务
func (r *GormOrderItemRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListRecentReviews 商品最近评价，预加载下单用户与 SKU
func (r *GormOrderItemRepository) ListRecentReviews(productID uint, limit int) ([]models.OrderItem, error) {
	var items []models.OrderItem
	query := r.db.
		Preload("Order", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Order.User", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("ProductSKU", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("product_id = ? AND reviewed_at IS NOT NULL", productID).
		Order("reviewed_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, pkgerrors.Wrapf(err, "list reviews of product %d", productID)
	}
	return items, nil
}

// GetWithOrder 获取订单项及所属订单，不存在返回 nil
func (r *GormOrderItemRepository) GetWithOrder(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.Preload("Order").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrapf(err, "get order item %d", id)
	}
	return &item, nil
}

// SubmitReview 写入评价，仅对未评价的订单项生效，返回受影响行数
func (r *GormOrderItemRepository) SubmitReview(id uint, rating int, review string, at time.Time) (int64, error) {
	result := r.db.Model(&models.OrderItem{}).
		Where("id = ? AND reviewed_at IS NULL", id).
		Updates(map[string]interface{}{
			"rating":      rating,
			"review":      review,
			"reviewed_at": at,
		})
	if result.Error != nil {
		return 0, pkgerrors.Wrapf(result.Error, "submit review of order item %d", id)
	}
	return result.RowsAffected, nil
}

// SyncOrderReviewed 订单下所有订单项均已评价时标记订单已评价
func (r *GormOrderItemRepository) SyncOrderReviewed(orderID uint) error {
	var pending int64
	if err := r.db.Model(&models.OrderItem{}).
		Where("order_id = ? AND reviewed_at IS NULL", orderID).
		Count(&pending).Error; err != nil {
		return pkgerrors.Wrapf(err, "count pending reviews of order %d", orderID)
	}
	if pending > 0 {
		return nil
	}
	err := r.db.Model(&models.Order{}).Where("id = ?", orderID).Update("reviewed", true).Error
	return pkgerrors.Wrapf(err, "mark order %d reviewed", orderID)
}

// ReviewStats 商品评价统计
func (r *GormOrderItemRepository) ReviewStats(productID uint) (ProductReviewStats, error) {
	var row struct {
		AvgRating   float64
		ReviewCount int64
	}
	err := r.db.Model(&models.OrderItem{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
		Where("product_id = ? AND reviewed_at IS NOT NULL", productID).
		Scan(&row).Error
	if err != nil {
		return ProductReviewStats{}, pkgerrors.Wrapf(err, "review stats of product %d", productID)
	}
	return ProductReviewStats{AvgRating: row.AvgRating, ReviewCount: row.ReviewCount}, nil
}

// SoldCount 已支付订单中的商品销量
func (r *GormOrderItemRepository) SoldCount(productID uint) (int64, error) {
	var sold int64
	err := r.db.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(order_items.amount), 0)").
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.deleted_at IS NULL").
		Where("order_items.product_id = ? AND orders.paid_at IS NOT NULL", productID).
		Scan(&sold).Error
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "sold count of product %d", productID)
	}
	return sold, nil
}

package repository

import (
	"errors"
	"time"

	"github.com/catalog-next/internal/models"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository 收藏数据访问接口
type FavoriteRepository interface {
	Add(userID, productID uint) error
	Remove(userID, productID uint) error
	Exists(userID, productID uint) (bool, error)
	FavoritedIDs(userID uint, productIDs []uint) (map[uint]bool, error)
	ListProducts(filter FavoriteListFilter) ([]models.Product, int64, error)
}

// GormFavoriteRepository GORM 实现
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository 创建收藏仓库
func NewFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Add 建立收藏关系，已存在时不做任何事
func (r *GormFavoriteRepository) Add(userID, productID uint) error {
	link := models.UserFavoriteProduct{
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return pkgerrors.Wrapf(err, "favor product %d for user %d", productID, userID)
	}
	return nil
}

// Remove 删除收藏关系，不存在视为成功
func (r *GormFavoriteRepository) Remove(userID, productID uint) error {
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.UserFavoriteProduct{}).Error
	return pkgerrors.Wrapf(err, "disfavor product %d for user %d", productID, userID)
}

// Exists 是否已收藏
func (r *GormFavoriteRepository) Exists(userID, productID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.UserFavoriteProduct{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, pkgerrors.Wrap(err, "check favorite")
	}
	return count > 0, nil
}

// FavoritedIDs 批量判断收藏状态，返回已收藏的商品 ID 集合
func (r *GormFavoriteRepository) FavoritedIDs(userID uint, productIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool, len(productIDs))
	if userID == 0 || len(productIDs) == 0 {
		return result, nil
	}
	var ids []uint
	if err := r.db.Model(&models.UserFavoriteProduct{}).
		Where("user_id = ? AND product_id IN ?", userID, productIDs).
		Pluck("product_id", &ids).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list favorited ids")
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// ListProducts 用户收藏的商品，按收藏时间倒序
func (r *GormFavoriteRepository) ListProducts(filter FavoriteListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).
		Joins("JOIN user_favorite_products ufp ON ufp.product_id = products.id").
		Where("ufp.user_id = ?", filter.UserID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgerrors.Wrap(err, "count favorite products")
	}
	if pageBeyondTotal(filter.Page, filter.PageSize, total) {
		return []models.Product{}, total, nil
	}

	var products []models.Product
	query = applyPagination(query.Order("ufp.created_at DESC, products.id DESC"), filter.Page, filter.PageSize)
	if err := query.Preload("SKUs", preloadSKUs).Find(&products).Error; err != nil {
		return nil, 0, pkgerrors.Wrap(err, "list favorite products")
	}
	return products, total, nil
}

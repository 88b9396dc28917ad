package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/catalog-next/internal/constants"
	"github.com/catalog-next/internal/models"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// productSortColumns 允许的排序字段与列映射
var productSortColumns = map[string]string{
	constants.ProductSortPrice:     "products.price",
	constants.ProductSortSoldCount: "products.sold_count",
	constants.ProductSortRating:    "products.rating",
}

// IsProductSortField 判断排序字段是否在白名单内
func IsProductSortField(field string) bool {
	_, ok := productSortColumns[field]
	return ok
}

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	Search(filter ProductSearchFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
	UpdateStats(id uint, rating float64, reviewCount int64, soldCount int64) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Search 前台商品搜索：仅上架商品，标题/描述/SKU 子串匹配，白名单排序，固定分页
func (r *GormProductRepository) Search(filter ProductSearchFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Where("products.on_sale = ?", true)

	if search := strings.TrimSpace(filter.Search); search != "" {
		dialect := dbDialectName(r.db)
		productCond, productArgs := buildLikeCondition(dialect, "products.title", "products.description")
		skuCond, skuArgs := buildLikeCondition(dialect, "ps.title", "ps.description")
		condition := fmt.Sprintf(
			"(%s OR EXISTS (SELECT 1 FROM product_skus ps WHERE ps.product_id = products.id AND ps.deleted_at IS NULL AND (%s)))",
			productCond,
			skuCond,
		)
		query = query.Where(condition, repeatLikeArgs(likePatternByDialect(dialect, search), productArgs+skuArgs)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgerrors.Wrap(err, "count products")
	}
	if pageBeyondTotal(filter.Page, filter.PageSize, total) {
		return []models.Product{}, total, nil
	}

	if column, ok := productSortColumns[filter.SortField]; ok {
		direction := "ASC"
		if filter.SortDesc {
			direction = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", column, direction))
	}
	query = query.Order("products.id ASC")

	var products []models.Product
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("SKUs", preloadSKUs).Find(&products).Error; err != nil {
		return nil, 0, pkgerrors.Wrap(err, "search products")
	}
	return products, total, nil
}

// GetByID 根据 ID 获取商品（含 SKU），不存在返回 nil
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("SKUs", preloadSKUs).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrapf(err, "get product %d", id)
	}
	return &product, nil
}

// ListByIDs 批量获取商品
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Order("id ASC").Find(&products).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list products by ids")
	}
	return products, nil
}

// Create 创建商品（含 SKU）
func (r *GormProductRepository) Create(product *models.Product) error {
	return pkgerrors.Wrap(r.db.Create(product).Error, "create product")
}

// UpdateStats 回写评分、评价数与销量
func (r *GormProductRepository) UpdateStats(id uint, rating float64, reviewCount int64, soldCount int64) error {
	err := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"rating":       rating,
		"review_count": reviewCount,
		"sold_count":   soldCount,
	}).Error
	return pkgerrors.Wrapf(err, "update stats of product %d", id)
}

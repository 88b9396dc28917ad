package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductSKU 商品 SKU 表
type ProductSKU struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // 主键
	ProductID   uint           `gorm:"not null;index" json:"product_id"`                   // 商品ID
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`            // SKU 名称
	Description string         `gorm:"type:text" json:"description"`                       // SKU 描述
	Price       Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // SKU 价格
	Stock       int            `gorm:"not null;default:0" json:"stock"`                    // 库存
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (ProductSKU) TableName() string {
	return "product_skus"
}

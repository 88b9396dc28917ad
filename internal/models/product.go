package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                // 主键
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`             // 标题
	Description string         `gorm:"type:text" json:"description"`                        // 描述
	Image       string         `gorm:"type:varchar(512)" json:"image"`                      // 封面图
	OnSale      bool           `gorm:"not null;index" json:"on_sale"`                       // 是否上架
	Price       Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"`  // 最低 SKU 价格
	SoldCount   int            `gorm:"not null;default:0;index" json:"sold_count"`          // 销量
	Rating      float64        `gorm:"not null;default:5;index" json:"rating"`              // 平均评分
	ReviewCount int            `gorm:"not null;default:0" json:"review_count"`              // 评价数
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                          // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间

	SKUs []ProductSKU `gorm:"foreignKey:ProductID" json:"skus,omitempty"` // SKU 列表
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

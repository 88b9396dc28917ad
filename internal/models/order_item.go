package models

import "time"

// OrderItem 订单项表，评价信息直接存放在订单项上
type OrderItem struct {
	ID           uint       `gorm:"primarykey" json:"id"`                                       // 主键
	OrderID      uint       `gorm:"not null;index" json:"order_id"`                             // 订单ID
	ProductID    uint       `gorm:"not null;index:idx_order_item_review" json:"product_id"`     // 商品ID
	ProductSKUID uint       `gorm:"column:product_sku_id;not null;index" json:"product_sku_id"` // SKU ID
	Amount       int        `gorm:"not null;default:1" json:"amount"`                           // 购买数量
	Price        Money      `gorm:"type:decimal(10,2);not null;default:0" json:"price"`         // 成交单价
	Rating       *int       `json:"rating"`                                                     // 评分（1-5）
	Review       string     `gorm:"type:text" json:"review"`                                    // 评价内容
	ReviewedAt   *time.Time `gorm:"index:idx_order_item_review" json:"reviewed_at"`             // 评价时间（为空表示未评价）
	CreatedAt    time.Time  `json:"created_at"`                                                 // 创建时间
	UpdatedAt    time.Time  `json:"updated_at"`                                                 // 更新时间

	Order      *Order      `gorm:"foreignKey:OrderID" json:"order,omitempty"`            // 所属订单
	Product    *Product    `gorm:"foreignKey:ProductID" json:"product,omitempty"`        // 商品
	ProductSKU *ProductSKU `gorm:"foreignKey:ProductSKUID" json:"product_sku,omitempty"` // SKU
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

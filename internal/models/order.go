package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	No          string         `gorm:"uniqueIndex;type:varchar(64);not null" json:"no"`           // 订单号
	UserID      uint           `gorm:"not null;index" json:"user_id"`                             // 用户ID
	TotalAmount Money          `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"` // 订单总额
	Status      string         `gorm:"type:varchar(32);not null;index" json:"status"`             // 订单状态
	PaidAt      *time.Time     `gorm:"index" json:"paid_at"`                                      // 支付时间
	Reviewed    bool           `gorm:"not null" json:"reviewed"`                                  // 是否已全部评价
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`   // 下单用户
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// IsPaid 订单是否已支付
func (o *Order) IsPaid() bool {
	return o != nil && o.PaidAt != nil
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon 优惠券
type Coupon struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                    // 主键
	Name       string         `gorm:"type:varchar(255);not null;default:''" json:"name"`       // 名称
	Code       string         `gorm:"uniqueIndex;type:varchar(64);not null" json:"code"`       // 优惠码
	Type       string         `gorm:"type:varchar(20);not null" json:"type"`                   // 类型（fixed/percent）
	Value      Money          `gorm:"type:decimal(10,2);not null" json:"value"`                // 数值（固定金额或百分比）
	MinAmount  Money          `gorm:"type:decimal(10,2);not null;default:0" json:"min_amount"` // 使用门槛
	UsageLimit *int           `json:"usage_limit"`                                             // 总使用上限（为空表示不限制）
	UsedCount  int            `gorm:"not null;default:0" json:"used_count"`                    // 已使用次数
	StartsAt   *time.Time     `gorm:"index" json:"starts_at"`                                  // 生效时间
	EndsAt     *time.Time     `gorm:"index" json:"ends_at"`                                    // 失效时间
	Enabled    bool           `gorm:"not null" json:"enabled"`                                 // 是否启用
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                                 // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                  // 主键
	Email        string         `gorm:"uniqueIndex;not null" json:"-"`         // 邮箱（评价中不对外暴露）
	Name         string         `gorm:"not null;default:''" json:"name"`       // 昵称
	PasswordHash string         `gorm:"not null" json:"-"`                     // 密码哈希
	Status       string         `gorm:"not null;default:'active'" json:"-"`    // 账号状态
	TokenVersion uint64         `gorm:"not null;default:0" json:"-"`           // Token 版本（用于全量失效）
	LastLoginAt  *time.Time     `json:"-"`                                     // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`               // 创建时间
	UpdatedAt    time.Time      `json:"-"`                                     // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

package models

import "time"

// UserFavoriteProduct 用户收藏商品关联表，(user_id, product_id) 联合主键保证唯一
type UserFavoriteProduct struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`          // 用户ID
	ProductID uint      `gorm:"primaryKey;autoIncrement:false;index" json:"product_id"` // 商品ID
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                // 收藏时间
}

// TableName 指定表名
func (UserFavoriteProduct) TableName() string {
	return "user_favorite_products"
}

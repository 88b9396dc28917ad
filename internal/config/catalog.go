package config

import "time"

const (
	// DefaultPageSize 商品列表与收藏列表的固定分页大小
	DefaultPageSize = 16
	// DefaultReviewLimit 商品详情页展示的最近评价数量
	DefaultReviewLimit = 10
)

// Normalize 补齐非法或缺失的目录配置
func (c CatalogConfig) Normalize() CatalogConfig {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.ReviewLimit <= 0 {
		c.ReviewLimit = DefaultReviewLimit
	}
	if c.ReviewCacheTTLSeconds < 0 {
		c.ReviewCacheTTLSeconds = 0
	}
	return c
}

// ReviewCacheTTL 评价缓存时长，0 表示不缓存
func (c CatalogConfig) ReviewCacheTTL() time.Duration {
	return time.Duration(c.ReviewCacheTTLSeconds) * time.Second
}

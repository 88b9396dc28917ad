package repository

import (
	"math"

	"gorm.io/gorm"
)

// pageOffset 计算分页偏移量，页码过大导致溢出时 ok 为 false。
func pageOffset(page, pageSize int) (offset int, ok bool) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		return 0, true
	}
	if page-1 > math.MaxInt/pageSize {
		return 0, false
	}
	return (page - 1) * pageSize, true
}

// pageBeyondTotal 页码越过结果集末尾（含偏移量溢出）
func pageBeyondTotal(page, pageSize int, total int64) bool {
	if pageSize <= 0 {
		return false
	}
	offset, ok := pageOffset(page, pageSize)
	return !ok || int64(offset) >= total
}

// applyPagination 应用分页参数，统一处理非法页码与偏移量。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	offset, ok := pageOffset(page, pageSize)
	if !ok {
		offset = math.MaxInt
	}
	return query.Limit(pageSize).Offset(offset)
}

// preloadSKUs 统一 SKU 预加载顺序
func preloadSKUs(db *gorm.DB) *gorm.DB {
	return db.Order("product_skus.id ASC")
}

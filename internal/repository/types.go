package repository

// ProductSearchFilter 前台商品搜索条件
type ProductSearchFilter struct {
	Page      int
	PageSize  int
	Search    string // 已去除首尾空白，空串表示不过滤
	SortField string // 为空表示默认排序，仅接受白名单字段
	SortDesc  bool
}

// FavoriteListFilter 收藏列表条件
type FavoriteListFilter struct {
	UserID   uint
	Page     int
	PageSize int
}

// ProductReviewStats 商品评价统计
type ProductReviewStats struct {
	AvgRating   float64
	ReviewCount int64
}

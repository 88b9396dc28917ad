package constants

// 订单状态常量
const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusPaid           = "paid"
	OrderStatusCompleted      = "completed"
	OrderStatusCanceled       = "canceled"
)

// 商品排序字段常量
const (
	ProductSortPrice     = "price"
	ProductSortSoldCount = "sold_count"
	ProductSortRating    = "rating"
)

// 排序方向常量
const (
	SortDirectionAsc  = "asc"
	SortDirectionDesc = "desc"
)

// 优惠券类型常量
const (
	CouponTypeFixed   = "fixed"
	CouponTypePercent = "percent"
)

// 优惠券可用性状态常量
const (
	CouponStateActive         = "active"
	CouponStateNotFound       = "not_found"
	CouponStateDisabled       = "disabled"
	CouponStateNotStarted     = "not_started"
	CouponStateExpired        = "expired"
	CouponStateExhausted      = "exhausted"
	CouponStateBelowMinAmount = "below_min_amount"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 评分范围
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// 队列与任务常量
const (
	QueueDefault            = "default"
	TaskProductStatsRefresh = "product:stats_refresh"
)

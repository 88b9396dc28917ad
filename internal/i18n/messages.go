package i18n

var messages = map[string]map[string]string{
	LocaleZhCN: {
		"error.bad_request":              "请求参数错误",
		"error.unauthorized":             "请先登录",
		"error.auth_header_missing":      "缺少认证信息",
		"error.auth_header_invalid":      "认证信息格式错误",
		"error.token_invalid":            "登录已失效，请重新登录",
		"error.token_revoked":            "登录状态已失效，请重新登录",
		"error.jwt_secret_missing":       "服务端认证配置缺失",
		"error.too_many_requests":        "请求过于频繁，请稍后再试",
		"error.rate_limited":             "请求过于频繁，请 %d 秒后再试",
		"error.rate_limit_unavailable":   "限流服务暂不可用",
		"error.login_too_many":           "登录尝试次数过多，请 %d 秒后再试",
		"error.internal":                 "服务器内部错误",
		"error.not_found":                "资源不存在",
		"error.product_not_found":        "商品不存在",
		"error.product_not_on_sale":      "该商品未上架",
		"error.product_id_invalid":       "商品ID无效",
		"error.product_fetch_failed":     "获取商品失败",
		"error.product_search_failed":    "搜索商品失败",
		"error.favorite_failed":          "收藏操作失败",
		"error.coupon_not_found":         "优惠券不存在",
		"error.coupon_code_invalid":      "优惠码格式错误",
		"error.coupon_unavailable":       "优惠券不可用",
		"error.user_id_invalid":          "用户ID无效",
		"error.user_id_type_invalid":     "用户ID类型错误",
		"error.coupon_check_failed":      "优惠券检查失败",
		"error.coupon_amount_invalid":    "订单金额格式错误",
		"error.order_item_not_found":     "订单项不存在",
		"error.order_item_id_invalid":    "订单项ID无效",
		"error.order_not_paid":           "订单未支付，无法评价",
		"error.review_invalid":           "评分须为 1-5 且评价内容不能为空",
		"error.review_already_submitted": "该商品已评价",
		"error.review_failed":            "提交评价失败",
		"error.login_failed":             "登录失败",
		"error.invalid_credentials":      "邮箱或密码错误",
		"error.user_disabled":            "账号已被禁用",
		"coupon.state.disabled":          "优惠券已被禁用",
		"coupon.state.not_started":       "该优惠券现在还不能使用",
		"coupon.state.expired":           "该优惠券已过期",
		"coupon.state.exhausted":         "该优惠券已被兑完",
		"coupon.state.below_min_amount":  "订单金额不满 %s 元",
		"coupon.desc.fixed":              "减 %s",
		"coupon.desc.percent":            "优惠 %s%%",
		"coupon.desc.min_amount":         "满 %s ",
	},
	LocaleEnUS: {
		"error.bad_request":              "Invalid request parameters",
		"error.unauthorized":             "Please sign in first",
		"error.auth_header_missing":      "Missing authorization header",
		"error.auth_header_invalid":      "Malformed authorization header",
		"error.token_invalid":            "Session expired, please sign in again",
		"error.token_revoked":            "Session revoked, please sign in again",
		"error.jwt_secret_missing":       "Server authentication is not configured",
		"error.too_many_requests":        "Too many requests, please retry later",
		"error.rate_limited":             "Too many requests, retry in %d seconds",
		"error.rate_limit_unavailable":   "Rate limiter unavailable",
		"error.login_too_many":           "Too many login attempts, retry in %d seconds",
		"error.internal":                 "Internal server error",
		"error.not_found":                "Resource not found",
		"error.product_not_found":        "Product not found",
		"error.product_not_on_sale":      "Product is not on sale",
		"error.product_id_invalid":       "Invalid product id",
		"error.product_fetch_failed":     "Failed to load product",
		"error.product_search_failed":    "Failed to search products",
		"error.favorite_failed":          "Failed to update favorites",
		"error.coupon_not_found":         "Coupon not found",
		"error.coupon_code_invalid":      "Invalid coupon code",
		"error.coupon_unavailable":       "Coupon unavailable",
		"error.user_id_invalid":          "Invalid user id",
		"error.user_id_type_invalid":     "Invalid user id type",
		"error.coupon_check_failed":      "Failed to check coupon",
		"error.coupon_amount_invalid":    "Invalid order amount",
		"error.order_item_not_found":     "Order item not found",
		"error.order_item_id_invalid":    "Invalid order item id",
		"error.order_not_paid":           "Order is not paid yet",
		"error.review_invalid":           "Rating must be 1-5 and review must not be empty",
		"error.review_already_submitted": "This item has already been reviewed",
		"error.review_failed":            "Failed to submit review",
		"error.login_failed":             "Login failed",
		"error.invalid_credentials":      "Incorrect email or password",
		"error.user_disabled":            "Account is disabled",
		"coupon.state.disabled":          "Coupon is disabled",
		"coupon.state.not_started":       "Coupon is not usable yet",
		"coupon.state.expired":           "Coupon has expired",
		"coupon.state.exhausted":         "Coupon has been fully redeemed",
		"coupon.state.below_min_amount":  "Order amount must reach %s",
		"coupon.desc.fixed":              "%s off",
		"coupon.desc.percent":            "%s%% off",
		"coupon.desc.min_amount":         "Orders over %s: ",
	},
}

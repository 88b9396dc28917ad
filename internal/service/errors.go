package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 通用资源不存在
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated 需要登录
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrProductNotOnSale = errors.New("product is not on sale")

	ErrCouponNotFound    = fmt.Errorf("coupon %w", ErrNotFound)
	ErrCouponUnavailable = errors.New("coupon unavailable")

	ErrOrderItemNotFound      = fmt.Errorf("order item %w", ErrNotFound)
	ErrOrderNotPaid           = errors.New("order is not paid")
	ErrReviewInvalid          = errors.New("invalid review")
	ErrReviewAlreadySubmitted = errors.New("review already submitted")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrInvalidToken       = errors.New("invalid token")
)

// CouponUnavailableError 优惠券存在但当前不可用，Reason 为不可用原因
type CouponUnavailableError struct {
	Reason    CouponState
	MinAmount string // 仅 Reason 为 below_min_amount 时有值
}

func (e *CouponUnavailableError) Error() string {
	return fmt.Sprintf("coupon unavailable: %s", e.Reason)
}

// Is 使 errors.Is(err, ErrCouponUnavailable) 成立
func (e *CouponUnavailableError) Is(target error) bool {
	return target == ErrCouponUnavailable
}

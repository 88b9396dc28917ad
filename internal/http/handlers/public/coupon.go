package public

import (
	"errors"
	"strings"
	"time"

	"github.com/catalog-next/internal/constants"
	"github.com/catalog-next/internal/http/response"
	"github.com/catalog-next/internal/i18n"
	"github.com/catalog-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CouponCheckRequest 优惠券检查请求
type CouponCheckRequest struct {
	Code string `uri:"code" binding:"required,couponcode"`
}

// CheckCoupon 检查优惠券当前是否可用
func (h *Handler) CheckCoupon(c *gin.Context) {
	var req CouponCheckRequest
	if err := c.ShouldBindUri(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.coupon_code_invalid", nil)
		return
	}

	var orderAmount *decimal.Decimal
	if raw := strings.TrimSpace(c.Query("order_amount")); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.IsNegative() {
			respondError(c, response.CodeBadRequest, "error.coupon_amount_invalid", nil)
			return
		}
		orderAmount = &amount
	}

	locale := i18n.ResolveLocale(c)
	coupon, err := h.CouponService.CheckAvailable(req.Code, time.Now(), orderAmount)
	if err != nil {
		var unavailable *service.CouponUnavailableError
		switch {
		case errors.As(err, &unavailable):
			response.ErrorWithData(c, response.CodeBadRequest, i18n.T(locale, "error.coupon_unavailable"), gin.H{
				"reason":  unavailable.Reason,
				"message": couponReasonMessage(locale, unavailable),
			})
		case errors.Is(err, service.ErrCouponNotFound):
			respondError(c, response.CodeNotFound, "error.coupon_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.coupon_check_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"state":       constants.CouponStateActive,
		"coupon":      coupon,
		"description": service.DescribeCoupon(locale, coupon),
	})
}

func couponReasonMessage(locale string, err *service.CouponUnavailableError) string {
	key := "coupon.state." + string(err.Reason)
	if err.Reason == service.CouponBelowMinAmount {
		return i18n.Sprintf(locale, key, err.MinAmount)
	}
	return i18n.T(locale, key)
}

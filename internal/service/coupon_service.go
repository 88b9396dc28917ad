package service

import (
	"strings"
	"time"

	"github.com/catalog-next/internal/constants"
	"github.com/catalog-next/internal/i18n"
	"github.com/catalog-next/internal/models"
	"github.com/catalog-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CouponState 优惠券可用性状态
type CouponState string

const (
	CouponActive         CouponState = constants.CouponStateActive
	CouponNotFound       CouponState = constants.CouponStateNotFound
	CouponDisabled       CouponState = constants.CouponStateDisabled
	CouponNotStarted     CouponState = constants.CouponStateNotStarted
	CouponExpired        CouponState = constants.CouponStateExpired
	CouponExhausted      CouponState = constants.CouponStateExhausted
	CouponBelowMinAmount CouponState = constants.CouponStateBelowMinAmount
)

// EvaluateCoupon 按固定顺序检查优惠券，返回第一个不满足的状态
func EvaluateCoupon(coupon *models.Coupon, now time.Time) CouponState {
	if coupon == nil {
		return CouponNotFound
	}
	if !coupon.Enabled {
		return CouponDisabled
	}
	if coupon.StartsAt != nil && now.Before(*coupon.StartsAt) {
		return CouponNotStarted
	}
	if coupon.EndsAt != nil && now.After(*coupon.EndsAt) {
		return CouponExpired
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return CouponExhausted
	}
	return CouponActive
}

// CouponService 优惠券服务
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// CheckAvailable 按优惠码检查可用性，orderAmount 非空时额外校验使用门槛
func (s *CouponService) CheckAvailable(code string, now time.Time, orderAmount *decimal.Decimal) (*models.Coupon, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, ErrCouponNotFound
	}
	coupon, err := s.couponRepo.GetByCode(trimmed)
	if err != nil {
		return nil, err
	}
	if err := checkCoupon(coupon, now, orderAmount); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Redeem 在事务内复核并占用一次优惠券使用次数
func (s *CouponService) Redeem(code string, now time.Time, orderAmount *decimal.Decimal) (*models.Coupon, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, ErrCouponNotFound
	}
	var redeemed *models.Coupon
	err := s.couponRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.couponRepo.WithTx(tx)
		coupon, err := repo.GetByCode(trimmed)
		if err != nil {
			return err
		}
		if err := checkCoupon(coupon, now, orderAmount); err != nil {
			return err
		}
		affected, err := repo.IncrementUsedCount(coupon.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &CouponUnavailableError{Reason: CouponExhausted}
		}
		coupon.UsedCount++
		redeemed = coupon
		return nil
	})
	if err != nil {
		return nil, err
	}
	return redeemed, nil
}

func checkCoupon(coupon *models.Coupon, now time.Time, orderAmount *decimal.Decimal) error {
	switch state := EvaluateCoupon(coupon, now); state {
	case CouponNotFound:
		return ErrCouponNotFound
	case CouponActive:
	default:
		return &CouponUnavailableError{Reason: state}
	}
	if orderAmount != nil && orderAmount.LessThan(coupon.MinAmount.Decimal) {
		return &CouponUnavailableError{Reason: CouponBelowMinAmount, MinAmount: coupon.MinAmount.String()}
	}
	return nil
}

// DescribeCoupon 生成优惠券的可读描述，如“满 100 减 10”
func DescribeCoupon(locale string, coupon *models.Coupon) string {
	if coupon == nil {
		return ""
	}
	var b strings.Builder
	if coupon.MinAmount.IsPositive() {
		b.WriteString(i18n.Sprintf(locale, "coupon.desc.min_amount", trimAmount(coupon.MinAmount)))
	}
	if coupon.Type == constants.CouponTypePercent {
		b.WriteString(i18n.Sprintf(locale, "coupon.desc.percent", trimAmount(coupon.Value)))
	} else {
		b.WriteString(i18n.Sprintf(locale, "coupon.desc.fixed", trimAmount(coupon.Value)))
	}
	return b.String()
}

// trimAmount 去掉无意义的小数位，10.00 -> 10，9.50 -> 9.5
func trimAmount(m models.Money) string {
	return m.Decimal.Round(2).String()
}

package shared

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	couponCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	registerOnce      sync.Once
)

// RegisterValidators 在 gin 的校验引擎上注册自定义标签
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("couponcode", validateCouponCode)
	})
}

func validateCouponCode(fl validator.FieldLevel) bool {
	return couponCodePattern.MatchString(fl.Field().String())
}

package shared

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type couponCodeProbe struct {
	Code string `binding:"couponcode"`
}

func TestCouponCodeValidator(t *testing.T) {
	RegisterValidators()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatalf("unexpected validator engine")
	}

	cases := []struct {
		code  string
		valid bool
	}{
		{code: "SPRING-10", valid: true},
		{code: "vip_2024", valid: true},
		{code: "", valid: false},
		{code: "bad code", valid: false},
		{code: "满减券", valid: false},
	}
	for _, tc := range cases {
		err := v.Struct(couponCodeProbe{Code: tc.code})
		if (err == nil) != tc.valid {
			t.Fatalf("code %q: want valid=%v, got err=%v", tc.code, tc.valid, err)
		}
	}
}

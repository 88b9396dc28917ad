package public

import (
	"errors"

	"github.com/catalog-next/internal/http/response"
	"github.com/catalog-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var productDetailErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductNotOnSale, code: response.CodeBadRequest, key: "error.product_not_on_sale"},
}

var favoriteErrorRules = []mappedHandlerError{
	{target: service.ErrUnauthenticated, code: response.CodeUnauthorized, key: "error.unauthorized"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductNotOnSale, code: response.CodeBadRequest, key: "error.product_not_on_sale"},
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrUnauthenticated, code: response.CodeUnauthorized, key: "error.unauthorized"},
	{target: service.ErrOrderItemNotFound, code: response.CodeNotFound, key: "error.order_item_not_found"},
	{target: service.ErrOrderNotPaid, code: response.CodeBadRequest, key: "error.order_not_paid"},
	{target: service.ErrReviewInvalid, code: response.CodeBadRequest, key: "error.review_invalid"},
	{target: service.ErrReviewAlreadySubmitted, code: response.CodeBadRequest, key: "error.review_already_submitted"},
}

var loginErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
	{target: service.ErrUserDisabled, code: response.CodeUnauthorized, key: "error.user_disabled"},
}

func respondProductDetailError(c *gin.Context, err error) {
	respondWithMappedError(c, err, productDetailErrorRules, response.CodeInternal, "error.product_fetch_failed")
}

func respondFavoriteError(c *gin.Context, err error) {
	respondWithMappedError(c, err, favoriteErrorRules, response.CodeInternal, "error.favorite_failed")
}

func respondReviewError(c *gin.Context, err error) {
	respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.review_failed")
}

func respondLoginError(c *gin.Context, err error) {
	respondWithMappedError(c, err, loginErrorRules, response.CodeInternal, "error.login_failed")
}

package public

import (
	"github.com/catalog-next/internal/http/response"
	"github.com/catalog-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchProducts 搜索上架商品
func (h *Handler) SearchProducts(c *gin.Context) {
	result, err := h.ProductService.Search(service.ProductSearchInput{
		Search: c.Query("search"),
		Order:  c.Query("order"),
		Page:   queryPage(c),
		UserID: optionalUserID(c),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_search_failed", err)
		return
	}

	pagination := response.BuildPagination(result.Page, result.PageSize, result.Total)
	response.SuccessWithPage(c, gin.H{
		"items": result.Items,
		"filters": gin.H{
			"search": result.Search,
			"order":  result.Order,
		},
	}, pagination)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}

	detail, err := h.ProductService.GetDetail(productID, optionalUserID(c))
	if err != nil {
		respondProductDetailError(c, err)
		return
	}
	response.Success(c, gin.H{
		"product": detail.Product,
		"favored": detail.Favored,
		"reviews": detail.Reviews,
	})
}

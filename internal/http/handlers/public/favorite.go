package public

import (
	"github.com/catalog-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// FavorProduct 收藏商品
func (h *Handler) FavorProduct(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	if err := h.FavoriteService.Favor(userID, productID); err != nil {
		respondFavoriteError(c, err)
		return
	}
	response.Success(c, gin.H{"product_id": productID, "favored": true})
}

// DisfavorProduct 取消收藏
func (h *Handler) DisfavorProduct(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	if err := h.FavoriteService.Disfavor(userID, productID); err != nil {
		respondFavoriteError(c, err)
		return
	}
	response.Success(c, gin.H{"product_id": productID, "favored": false})
}

// ListFavorites 我的收藏
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	products, total, page, err := h.FavoriteService.ListFavorites(userID, queryPage(c))
	if err != nil {
		respondFavoriteError(c, err)
		return
	}
	pagination := response.BuildPagination(page, h.FavoriteService.PageSize(), total)
	response.SuccessWithPage(c, products, pagination)
}

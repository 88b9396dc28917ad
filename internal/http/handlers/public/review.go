package public

import (
	"github.com/catalog-next/internal/http/response"
	"github.com/catalog-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitReviewRequest 提交评价请求
type SubmitReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// SubmitReview 对已支付订单项提交评价
func (h *Handler) SubmitReview(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id", "error.order_item_id_invalid")
	if !ok {
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	item, err := h.ReviewService.SubmitReview(service.SubmitReviewInput{
		UserID:      userID,
		OrderItemID: itemID,
		Rating:      req.Rating,
		Review:      req.Review,
	})
	if err != nil {
		respondReviewError(c, err)
		return
	}
	response.Success(c, gin.H{
		"id":          item.ID,
		"product_id":  item.ProductID,
		"rating":      item.Rating,
		"review":      item.Review,
		"reviewed_at": item.ReviewedAt,
	})
}

package public

import (
	"github.com/catalog-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 用户登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login 邮箱密码登录
func (h *Handler) Login(c *gin.Context) {
	if !h.UserAuthService.SecretConfigured() {
		respondError(c, response.CodeInternal, "error.jwt_secret_missing", nil)
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		respondLoginError(c, err)
		return
	}
	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
		},
	})
}

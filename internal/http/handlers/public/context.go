package public

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/catalog-next/internal/http/handlers/shared"
	"github.com/catalog-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func getContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, key, invalidKey, typeInvalidKey)
}

func getUserID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// optionalUserID 可选登录接口读取用户ID，未登录返回 0
func optionalUserID(c *gin.Context) uint {
	value, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}

// parseIDParam 解析路径中的正整数ID，失败时直接写入错误响应
func parseIDParam(c *gin.Context, name, invalidKey string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, invalidKey, nil)
		return 0, false
	}
	return uint(id), true
}

// queryPage 页码参数，非法值按第一页处理，超出 int 范围的正数按最大页码处理
func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(strings.TrimSpace(c.Query("page")))
	if errors.Is(err, strconv.ErrRange) && page > 0 {
		return page
	}
	if err != nil || page < 1 {
		return 1
	}
	return page
}

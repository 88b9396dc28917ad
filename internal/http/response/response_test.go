package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPagination(t *testing.T) {
	assert.Equal(t, int64(2), BuildPagination(1, 16, 17).TotalPage)
	assert.Equal(t, int64(1), BuildPagination(1, 16, 16).TotalPage)
	assert.Equal(t, int64(0), BuildPagination(1, 16, 0).TotalPage)
	assert.Equal(t, int64(0), BuildPagination(1, 0, 10).TotalPage)
}

func TestErrorWithDataAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	ErrorWithData(c, CodeBadRequest, "nope", gin.H{"reason": "expired"})

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		StatusCode int               `json:"status_code"`
		Msg        string            `json:"msg"`
		Data       map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeBadRequest, body.StatusCode)
	assert.Equal(t, "expired", body.Data["reason"])
	assert.Equal(t, "req-1", body.Data["request_id"])
}

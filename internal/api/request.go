package api

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"news_backend/internal/shared/apperr"
)

const (
	invalidBodyMessage = "Invalid request body"
	invalidIDMessage   = "Invalid id"
)

// BindJSON はリクエストボディをobjにデコードします。空のボディではobjはゼロ値のままです。
// 不正なJSONはバリデーションエラーになります。
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return apperr.Validation(invalidBodyMessage)
	}
	return nil
}

// ParseID はパスパラメータ :id を正の整数として読み取ります。
func ParseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation(invalidIDMessage)
	}
	return uint(id), nil
}

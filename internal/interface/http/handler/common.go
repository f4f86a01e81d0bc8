package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// parseIDParam 解析路径参数中的资源ID
// 非数字或为0时返回参数错误
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "无效的ID参数")
	}
	return uint(id), nil
}

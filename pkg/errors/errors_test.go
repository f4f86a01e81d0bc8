package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorError(t *testing.T) {
	e := New(40001, "图书已全部借出")
	assert.Equal(t, "[40001] 图书已全部借出", e.Error())

	wrapped := Wrap(fmt.Errorf("connection refused"), "数据库错误")
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.Equal(t, ErrCodeInternal, wrapped.Code)
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("driver: bad connection")
	e := Wrap(inner, "查询失败")

	assert.ErrorIs(t, e, inner, "Wrap后的错误支持errors.Is穿透")
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(New(40400, "不存在")))
	assert.False(t, IsAppError(errors.New("plain error")))

	// 包装过的AppError也能识别
	e := fmt.Errorf("outer: %w", New(40001, "库存不足"))
	assert.True(t, IsAppError(e))
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		src := New(40001, "库存不足")
		got := GetAppError(src)
		assert.Equal(t, 40001, got.Code)
		assert.Equal(t, "库存不足", got.Message)
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		got := GetAppError(errors.New("boom"))
		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.NotNil(t, got.Err, "原始错误保留在Err字段供日志记录")
	})
}

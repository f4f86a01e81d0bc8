package borrowing

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 借阅领域错误定义
var (
	// ErrBorrowingNotFound 借阅记录不存在
	ErrBorrowingNotFound = apperrors.New(apperrors.ErrCodeBorrowingNotFound, "借阅记录不存在")

	// ErrInvalidDuration 借阅天数非法
	ErrInvalidDuration = apperrors.New(apperrors.ErrCodeInvalidDuration, "借阅天数必须为正整数")

	// ErrInvalidStatus 借阅状态非法
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidStatus, "状态必须为borrowed、returned或overdue之一")
)

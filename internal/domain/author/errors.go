package author

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrNameDuplicate 作者姓名已存在
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeAuthorDuplicate, "同名作者已存在")

	// ErrHasBooks 作者名下存在图书,禁止删除
	ErrHasBooks = apperrors.New(apperrors.ErrCodeAuthorHasBooks, "作者名下存在图书，请先删除相关图书")
)

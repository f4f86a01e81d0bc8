package category

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrNameDuplicate 分类名称已存在
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeCategoryDuplicate, "分类名称已存在")

	// ErrHasBooks 分类下存在图书,禁止删除
	ErrHasBooks = apperrors.New(apperrors.ErrCodeCategoryHasBooks, "分类下存在图书，请先删除相关图书")
)

package book

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrTitleDuplicate 书名已存在
	ErrTitleDuplicate = apperrors.New(apperrors.ErrCodeTitleDuplicate, "同名图书已存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")

	// ErrOutOfStock 库存不足(已全部借出)
	ErrOutOfStock = apperrors.New(apperrors.ErrCodeOutOfStock, "图书已全部借出，暂无可借库存")

	// ErrHasBorrowings 图书存在借阅记录,禁止删除
	ErrHasBorrowings = apperrors.New(apperrors.ErrCodeBookHasBorrowings, "图书存在借阅记录，无法删除")
)

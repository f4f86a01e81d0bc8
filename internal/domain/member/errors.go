package member

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 会员领域错误定义
var (
	// ErrMemberNotFound 会员不存在
	ErrMemberNotFound = apperrors.New(apperrors.ErrCodeMemberNotFound, "会员不存在")

	// ErrPhoneDuplicate 手机号已被注册
	ErrPhoneDuplicate = apperrors.New(apperrors.ErrCodePhoneDuplicate, "该手机号已被注册")

	// ErrEmailDuplicate 邮箱已被注册
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "该邮箱已被注册")

	// ErrHasBorrowings 会员存在借阅记录,禁止删除
	ErrHasBorrowings = apperrors.New(apperrors.ErrCodeMemberHasBorrowings, "会员存在借阅记录，无法删除")
)

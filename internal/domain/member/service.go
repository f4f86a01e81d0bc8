package member

import (
	"context"
	"errors"
	"time"
)

// BorrowingCounter 借阅计数接口(由借阅仓储实现,用于删除保护)
type BorrowingCounter interface {
	CountByMemberID(ctx context.Context, memberID uint) (int64, error)
}

// CreateParams 创建会员参数
type CreateParams struct {
	Name    string
	Phone   string
	Email   *string
	Address *string
}

// Service 会员领域服务接口
// 业务规则:
// - 手机号唯一;邮箱填写时唯一
// - 存在借阅记录时禁止删除
type Service interface {
	CreateMember(ctx context.Context, params CreateParams) (*Member, error)
	GetMember(ctx context.Context, id uint) (*Member, error)
	ListMembers(ctx context.Context) ([]*Member, error)
	UpdateMember(ctx context.Context, id uint, params UpdateParams) (*Member, error)
	DeleteMember(ctx context.Context, id uint) error
}

type service struct {
	repo       Repository
	borrowings BorrowingCounter
}

// NewService 创建会员领域服务
func NewService(repo Repository, borrowings BorrowingCounter) Service {
	return &service{repo: repo, borrowings: borrowings}
}

// CreateMember 创建会员
func (s *service) CreateMember(ctx context.Context, params CreateParams) (*Member, error) {
	// 手机号唯一性校验
	if existing, err := s.repo.FindByPhone(ctx, params.Phone); err != nil && !errors.Is(err, ErrMemberNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, ErrPhoneDuplicate
	}

	// 邮箱唯一性校验(仅在填写时)
	if params.Email != nil && *params.Email != "" {
		if existing, err := s.repo.FindByEmail(ctx, *params.Email); err != nil && !errors.Is(err, ErrMemberNotFound) {
			return nil, err
		} else if existing != nil {
			return nil, ErrEmailDuplicate
		}
	}

	m := NewMember(params.Name, params.Phone, params.Email, params.Address)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetMember 根据ID获取会员
func (s *service) GetMember(ctx context.Context, id uint) (*Member, error) {
	return s.repo.FindByID(ctx, id)
}

// ListMembers 查询全部会员
func (s *service) ListMembers(ctx context.Context) ([]*Member, error) {
	return s.repo.List(ctx)
}

// UpdateMember 部分更新会员信息
// 业务规则:手机号/邮箱变更时重新校验唯一性(排除自身)
func (s *service) UpdateMember(ctx context.Context, id uint, params UpdateParams) (*Member, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		m.Name = *params.Name
	}
	if params.Phone != nil && *params.Phone != "" {
		existing, err := s.repo.FindByPhone(ctx, *params.Phone)
		if err != nil && !errors.Is(err, ErrMemberNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrPhoneDuplicate
		}
		m.Phone = *params.Phone
	}
	if params.Email != nil {
		if *params.Email == "" {
			m.Email = nil
		} else {
			existing, err := s.repo.FindByEmail(ctx, *params.Email)
			if err != nil && !errors.Is(err, ErrMemberNotFound) {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, ErrEmailDuplicate
			}
			m.Email = params.Email
		}
	}
	if params.Address != nil {
		m.Address = params.Address
	}
	m.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMember 删除会员
// 业务规则:存在任何借阅记录时拒绝删除,会员保持不变
func (s *service) DeleteMember(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.borrowings.CountByMemberID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasBorrowings
	}

	return s.repo.Delete(ctx, id)
}

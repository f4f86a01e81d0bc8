package member

import (
	"context"
)

// Repository 会员仓储接口(domain层定义,infrastructure层实现)
type Repository interface {
	// Create 创建会员
	Create(ctx context.Context, m *Member) error

	// FindByID 根据ID查找会员
	FindByID(ctx context.Context, id uint) (*Member, error)

	// FindByPhone 根据手机号查找会员(用于唯一性校验)
	FindByPhone(ctx context.Context, phone string) (*Member, error)

	// FindByEmail 根据邮箱查找会员(用于唯一性校验)
	FindByEmail(ctx context.Context, email string) (*Member, error)

	// Update 更新会员信息
	Update(ctx context.Context, m *Member) error

	// Delete 删除会员
	Delete(ctx context.Context, id uint) error

	// List 查询全部会员
	List(ctx context.Context) ([]*Member, error)
}

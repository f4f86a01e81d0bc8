package borrowing

import (
	"context"
)

// Repository 借阅仓储接口(domain层定义,infrastructure层实现)
// 设计说明:写操作均需支持参与外部事务(通过context传递事务DB),
// 借阅状态变更与库存增减必须在同一事务内提交
type Repository interface {
	// Create 插入借阅记录
	Create(ctx context.Context, b *Borrowing) error

	// FindByID 根据ID查找借阅记录
	FindByID(ctx context.Context, id uint) (*Borrowing, error)

	// LockByID 悲观锁查询借阅记录(SELECT FOR UPDATE)
	// 状态变更/删除前先锁行,保证归还入账恰好一次
	LockByID(ctx context.Context, id uint) (*Borrowing, error)

	// Update 更新借阅记录(状态与归还时间)
	Update(ctx context.Context, b *Borrowing) error

	// Delete 删除借阅记录
	Delete(ctx context.Context, id uint) error

	// List 查询全部借阅记录
	List(ctx context.Context) ([]*Borrowing, error)

	// CountByBookID 统计指定图书的借阅记录数(含历史记录,用于删除保护)
	CountByBookID(ctx context.Context, bookID uint) (int64, error)

	// CountByMemberID 统计指定会员的借阅记录数(含历史记录,用于删除保护)
	CountByMemberID(ctx context.Context, memberID uint) (int64, error)
}

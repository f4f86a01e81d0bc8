package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. LockByID/UpdateStock构成库存台账的全部写入口:
//    库存增减必须与借阅状态变更处于同一事务,二者要么都生效要么都不生效
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, b *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByTitle 根据书名查找图书(用于唯一性校验)
	FindByTitle(ctx context.Context, title string) (*Book, error)

	// FindByISBN 根据ISBN查找图书(用于唯一性校验)
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, b *Book) error

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error

	// List 查询全部图书
	List(ctx context.Context) ([]*Book, error)

	// LockByID 悲观锁查询图书(SELECT FOR UPDATE)
	// 借阅事务中先锁行再校验库存,防止并发借阅同一本书时双双扣减穿底
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 原子更新库存(台账操作)
	// delta为正数表示归还入账,负数表示借出扣减
	// 扣减导致库存为负时不生效并返回ErrOutOfStock
	UpdateStock(ctx context.Context, id uint, delta int) error

	// CountByAuthorID 统计指定作者名下的图书数(删除保护)
	CountByAuthorID(ctx context.Context, authorID uint) (int64, error)

	// CountByCategoryID 统计指定分类下的图书数(删除保护)
	CountByCategoryID(ctx context.Context, categoryID uint) (int64, error)
}

package author

import (
	"context"
)

// Repository 作者仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, a *Author) error

	// FindByID 根据ID查找作者
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByName 根据姓名查找作者(用于唯一性校验)
	FindByName(ctx context.Context, name string) (*Author, error)

	// Update 更新作者信息
	Update(ctx context.Context, a *Author) error

	// Delete 删除作者
	Delete(ctx context.Context, id uint) error

	// List 查询全部作者
	List(ctx context.Context) ([]*Author, error)
}

package category

import (
	"context"
)

// Repository 分类仓储接口(domain层定义,infrastructure层实现)
type Repository interface {
	// Create 创建分类
	Create(ctx context.Context, c *Category) error

	// FindByID 根据ID查找分类
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindByName 根据名称查找分类(用于唯一性校验)
	FindByName(ctx context.Context, name string) (*Category, error)

	// Update 更新分类
	Update(ctx context.Context, c *Category) error

	// Delete 删除分类
	Delete(ctx context.Context, id uint) error

	// List 查询全部分类
	List(ctx context.Context) ([]*Category, error)
}

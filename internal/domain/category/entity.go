package category

import (
	"time"
)

// Category 分类实体(聚合根)
// 分类名称全局唯一(数据库层有唯一索引,服务层也做前置校验)
type Category struct {
	ID        uint
	Name      string // 分类名称(唯一)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory 创建新分类(工厂方法)
func NewCategory(name string) *Category {
	now := time.Now()
	return &Category{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename 修改分类名称
func (c *Category) Rename(name string) {
	c.Name = name
	c.UpdatedAt = time.Now()
}

package category

import (
	"context"
	"errors"
)

// BookCounter 图书计数接口(由图书仓储实现,用于删除保护)
type BookCounter interface {
	// CountByCategoryID 统计指定分类下的图书数
	CountByCategoryID(ctx context.Context, categoryID uint) (int64, error)
}

// Service 分类领域服务接口
// 业务规则:
// - 分类名称全局唯一
// - 分类下存在图书时禁止删除
type Service interface {
	CreateCategory(ctx context.Context, name string) (*Category, error)
	GetCategory(ctx context.Context, id uint) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	RenameCategory(ctx context.Context, id uint, name string) (*Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type service struct {
	repo  Repository
	books BookCounter
}

// NewService 创建分类领域服务
func NewService(repo Repository, books BookCounter) Service {
	return &service{repo: repo, books: books}
}

// CreateCategory 创建分类
func (s *service) CreateCategory(ctx context.Context, name string) (*Category, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, ErrCategoryNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameDuplicate
	}

	c := NewCategory(name)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCategory 根据ID获取分类
func (s *service) GetCategory(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

// ListCategories 查询全部分类
func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

// RenameCategory 修改分类名称
// 唯一性由数据库唯一索引兜底,仓储层会把冲突翻译为ErrNameDuplicate
func (s *service) RenameCategory(ctx context.Context, id uint, name string) (*Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Rename(name)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory 删除分类
func (s *service) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.books.CountByCategoryID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasBooks
	}

	return s.repo.Delete(ctx, id)
}

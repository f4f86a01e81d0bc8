package author

import (
	"context"
	"errors"
	"time"
)

// BookCounter 图书计数接口(由图书仓储实现)
// 设计说明:删除保护需要跨聚合查询,这里只依赖最小接口而非整个图书仓储
type BookCounter interface {
	// CountByAuthorID 统计指定作者名下的图书数
	CountByAuthorID(ctx context.Context, authorID uint) (int64, error)
}

// Service 作者领域服务接口
// 业务规则:
// - 作者姓名不允许重复
// - 名下存在图书时禁止删除
type Service interface {
	// CreateAuthor 创建作者
	CreateAuthor(ctx context.Context, name string, birthDate *time.Time) (*Author, error)

	// GetAuthor 根据ID获取作者
	GetAuthor(ctx context.Context, id uint) (*Author, error)

	// ListAuthors 查询全部作者
	ListAuthors(ctx context.Context) ([]*Author, error)

	// UpdateAuthor 部分更新作者信息
	UpdateAuthor(ctx context.Context, id uint, params UpdateParams) (*Author, error)

	// DeleteAuthor 删除作者(名下有图书时拒绝)
	DeleteAuthor(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo  Repository
	books BookCounter
}

// NewService 创建作者领域服务
func NewService(repo Repository, books BookCounter) Service {
	return &service{repo: repo, books: books}
}

// CreateAuthor 创建作者
func (s *service) CreateAuthor(ctx context.Context, name string, birthDate *time.Time) (*Author, error) {
	// 姓名唯一性校验
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, ErrAuthorNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameDuplicate
	}

	a := NewAuthor(name, birthDate)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAuthor 根据ID获取作者
func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAuthors 查询全部作者
func (s *service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return s.repo.List(ctx)
}

// UpdateAuthor 部分更新作者信息
func (s *service) UpdateAuthor(ctx context.Context, id uint, params UpdateParams) (*Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Apply(params)

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAuthor 删除作者
// 业务规则:名下存在图书时返回冲突错误,作者保持不变
func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.books.CountByAuthorID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasBooks
	}

	return s.repo.Delete(ctx, id)
}

package book

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/category"
)

// BorrowingCounter 借阅计数接口(由借阅仓储实现)
// 删除保护统计的是全部借阅记录,包括已归还的历史记录
type BorrowingCounter interface {
	CountByBookID(ctx context.Context, bookID uint) (int64, error)
}

// Detail 图书详情(携带作者与分类)
// 设计说明:关联数据通过显式的ID查询组装,不使用ORM级联加载
type Detail struct {
	Book     *Book
	Author   *author.Author
	Category *category.Category
}

// CreateParams 创建图书参数
type CreateParams struct {
	Title      string
	Year       *int
	ISBN       *string
	Stock      int
	AuthorID   uint
	CategoryID uint
}

// Service 图书领域服务接口
// 业务规则:
// - 书名唯一;ISBN填写时唯一
// - 作者/分类必须存在
// - 存在借阅记录(含历史记录)时禁止删除
type Service interface {
	CreateBook(ctx context.Context, params CreateParams) (*Detail, error)
	GetBook(ctx context.Context, id uint) (*Book, error)
	GetBookDetail(ctx context.Context, id uint) (*Detail, error)
	ListBooks(ctx context.Context) ([]*Book, error)
	UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Detail, error)
	DeleteBook(ctx context.Context, id uint) error
}

type service struct {
	repo       Repository
	authorRepo author.Repository
	catRepo    category.Repository
	borrowings BorrowingCounter
}

// NewService 创建图书领域服务
func NewService(repo Repository, authorRepo author.Repository, catRepo category.Repository, borrowings BorrowingCounter) Service {
	return &service{
		repo:       repo,
		authorRepo: authorRepo,
		catRepo:    catRepo,
		borrowings: borrowings,
	}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, params CreateParams) (*Detail, error) {
	// 1. 外键存在性校验(作者/分类不存在返回NotFound)
	a, err := s.authorRepo.FindByID(ctx, params.AuthorID)
	if err != nil {
		return nil, err
	}
	c, err := s.catRepo.FindByID(ctx, params.CategoryID)
	if err != nil {
		return nil, err
	}

	// 2. 书名唯一性校验
	if existing, err := s.repo.FindByTitle(ctx, params.Title); err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, ErrTitleDuplicate
	}

	// 3. ISBN唯一性校验(仅在填写时)
	if params.ISBN != nil && *params.ISBN != "" {
		if existing, err := s.repo.FindByISBN(ctx, *params.ISBN); err != nil && !errors.Is(err, ErrBookNotFound) {
			return nil, err
		} else if existing != nil {
			return nil, ErrISBNDuplicate
		}
	}

	// 4. 创建实体并持久化
	b, err := NewBook(params.Title, params.Year, params.ISBN, params.Stock, params.AuthorID, params.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return &Detail{Book: b, Author: a, Category: c}, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// GetBookDetail 获取图书详情(嵌套作者与分类)
func (s *service) GetBookDetail(ctx context.Context, id uint) (*Detail, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assembleDetail(ctx, b)
}

// ListBooks 查询全部图书(列表不展开关联,与详情接口区分)
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// UpdateBook 部分更新图书
// 业务规则:ISBN变更时重新校验唯一性(排除自身);作者/分类变更时重新校验存在性
func (s *service) UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Detail, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		b.Title = *params.Title
	}
	if params.Year != nil {
		b.Year = params.Year
	}
	if params.ISBN != nil {
		if *params.ISBN == "" {
			b.ISBN = nil
		} else {
			existing, err := s.repo.FindByISBN(ctx, *params.ISBN)
			if err != nil && !errors.Is(err, ErrBookNotFound) {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, ErrISBNDuplicate
			}
			b.ISBN = params.ISBN
		}
	}
	if params.Stock != nil {
		if *params.Stock < 0 {
			return nil, ErrInvalidStock
		}
		b.Stock = *params.Stock
	}
	if params.AuthorID != nil {
		if _, err := s.authorRepo.FindByID(ctx, *params.AuthorID); err != nil {
			return nil, err
		}
		b.AuthorID = *params.AuthorID
	}
	if params.CategoryID != nil {
		if _, err := s.catRepo.FindByID(ctx, *params.CategoryID); err != nil {
			return nil, err
		}
		b.CategoryID = *params.CategoryID
	}
	b.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return s.assembleDetail(ctx, b)
}

// DeleteBook 删除图书
// 业务规则:存在任何借阅记录(含已归还的历史记录)时拒绝删除
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.borrowings.CountByBookID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasBorrowings
	}

	return s.repo.Delete(ctx, id)
}

// assembleDetail 组装图书详情
func (s *service) assembleDetail(ctx context.Context, b *Book) (*Detail, error) {
	a, err := s.authorRepo.FindByID(ctx, b.AuthorID)
	if err != nil {
		return nil, err
	}
	c, err := s.catRepo.FindByID(ctx, b.CategoryID)
	if err != nil {
		return nil, err
	}
	return &Detail{Book: b, Author: a, Category: c}, nil
}

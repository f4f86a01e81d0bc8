package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. LockByID/UpdateStock需要支持参与外部事务,通过getDB(ctx)提取事务DB
// 3. 唯一索引冲突按索引名区分书名/ISBN,转换为对应业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:      b.Title,
		Year:       b.Year,
		ISBN:       b.ISBN,
		Stock:      b.Stock,
		AuthorID:   b.AuthorID,
		CategoryID: b.CategoryID,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return r.duplicateTarget(err)
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// FindByTitle 根据书名查找图书
func (r *bookRepository) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		ID:         b.ID,
		Title:      b.Title,
		Year:       b.Year,
		ISBN:       b.ISBN,
		Stock:      b.Stock,
		AuthorID:   b.AuthorID,
		CategoryID: b.CategoryID,
		CreatedAt:  b.CreatedAt,
	}

	// Save更新所有字段;ISBN为nil时写入NULL(支持清空)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return r.duplicateTarget(err)
		}
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书(物理删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// List 查询全部图书
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// LockByID 悲观锁查询图书(SELECT FOR UPDATE)
// 借阅事务内先锁定图书行再校验库存;必须通过getDB(ctx)参与事务,
// 否则锁在独立连接上,起不到串行化作用
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := r.getDB(ctx)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}
	return toBookEntity(&model), nil
}

// UpdateStock 更新库存(原子操作)
// UPDATE books SET stock = stock + delta WHERE id = ? AND stock + delta >= 0
// WHERE条件里的守护保证任何提交点库存都不为负
func (r *bookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	db := r.getDB(ctx)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("stock + ? >= 0", delta).
		Update("stock", gorm.Expr("stock + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或者库存不足,再查一次确定原因
		var model BookModel
		if err := r.getDB(ctx).First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		// 图书存在,说明是库存不足
		return book.ErrOutOfStock
	}

	return nil
}

// CountByAuthorID 统计指定作者名下的图书数
func (r *bookRepository) CountByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookModel{}).Where("author_id = ?", authorID).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计作者图书数失败")
	}
	return count, nil
}

// CountByCategoryID 统计指定分类下的图书数
func (r *bookRepository) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookModel{}).Where("category_id = ?", categoryID).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计分类图书数失败")
	}
	return count, nil
}

// duplicateTarget 按唯一索引名区分冲突字段
// MySQL的1062错误信息形如: Duplicate entry 'xxx' for key 'books.idx_books_isbn'
func (r *bookRepository) duplicateTarget(err error) error {
	if strings.Contains(err.Error(), "isbn") {
		return book.ErrISBNDuplicate
	}
	return book.ErrTitleDuplicate
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:         model.ID,
		Title:      model.Title,
		Year:       model.Year,
		ISBN:       model.ISBN,
		Stock:      model.Stock,
		AuthorID:   model.AuthorID,
		CategoryID: model.CategoryID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return r.db
}

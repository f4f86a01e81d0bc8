package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/author"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/author/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 唯一索引冲突转换为业务错误(ErrNameDuplicate)
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		Name:      a.Name,
		BirthDate: a.BirthDate,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return author.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建作者失败")
	}

	// 回填自增ID和数据库时间戳
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

// FindByName 根据姓名查找作者
func (r *authorRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	var model AuthorModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

// Update 更新作者信息
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		ID:        a.ID,
		Name:      a.Name,
		BirthDate: a.BirthDate,
		CreatedAt: a.CreatedAt,
	}

	// Save更新所有字段;BirthDate为nil时写入NULL(支持清空)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return author.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "更新作者失败")
	}

	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除作者(物理删除)
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// List 查询全部作者
func (r *authorRepository) List(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:        model.ID,
		Name:      model.Name,
		BirthDate: model.BirthDate,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

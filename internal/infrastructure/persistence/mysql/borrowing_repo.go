package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/borrowing"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// borrowingRepository 借阅仓储实现(MySQL)
// 设计说明:
// 1. 写操作都通过getDB(ctx)取DB——借阅事务中Create/Update/Delete
//    必须与图书库存变更落在同一事务连接上
// 2. LockByID用SELECT FOR UPDATE锁借阅行,串行化同一记录的状态变更
type borrowingRepository struct {
	db *gorm.DB
}

// NewBorrowingRepository 创建借阅仓储
func NewBorrowingRepository(db *gorm.DB) borrowing.Repository {
	return &borrowingRepository{db: db}
}

// Create 插入借阅记录
func (r *borrowingRepository) Create(ctx context.Context, b *borrowing.Borrowing) error {
	model := &BorrowingModel{
		BorrowNo:   b.BorrowNo,
		BookID:     b.BookID,
		MemberID:   b.MemberID,
		BorrowedAt: b.BorrowedAt,
		DueDate:    b.DueDate,
		ReturnedAt: b.ReturnedAt,
		Status:     string(b.Status),
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建借阅记录失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找借阅记录
func (r *borrowingRepository) FindByID(ctx context.Context, id uint) (*borrowing.Borrowing, error) {
	var model BorrowingModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowing.ErrBorrowingNotFound
		}
		return nil, apperrors.Wrap(err, "查询借阅记录失败")
	}
	return toBorrowingEntity(&model), nil
}

// LockByID 悲观锁查询借阅记录(SELECT FOR UPDATE)
func (r *borrowingRepository) LockByID(ctx context.Context, id uint) (*borrowing.Borrowing, error) {
	var model BorrowingModel
	db := r.getDB(ctx)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowing.ErrBorrowingNotFound
		}
		return nil, apperrors.Wrap(err, "锁定借阅记录失败")
	}
	return toBorrowingEntity(&model), nil
}

// Update 更新借阅记录(状态与归还时间)
func (r *borrowingRepository) Update(ctx context.Context, b *borrowing.Borrowing) error {
	model := &BorrowingModel{
		ID:         b.ID,
		BorrowNo:   b.BorrowNo,
		BookID:     b.BookID,
		MemberID:   b.MemberID,
		BorrowedAt: b.BorrowedAt,
		DueDate:    b.DueDate,
		ReturnedAt: b.ReturnedAt,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}

	db := r.getDB(ctx)
	if err := db.Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新借阅记录失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除借阅记录(物理删除)
func (r *borrowingRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	result := db.Delete(&BorrowingModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除借阅记录失败")
	}
	if result.RowsAffected == 0 {
		return borrowing.ErrBorrowingNotFound
	}
	return nil
}

// List 查询全部借阅记录
func (r *borrowingRepository) List(ctx context.Context) ([]*borrowing.Borrowing, error) {
	var models []BorrowingModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询借阅列表失败")
	}

	records := make([]*borrowing.Borrowing, len(models))
	for i := range models {
		records[i] = toBorrowingEntity(&models[i])
	}
	return records, nil
}

// CountByBookID 统计指定图书的借阅记录数(含历史记录)
func (r *borrowingRepository) CountByBookID(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BorrowingModel{}).Where("book_id = ?", bookID).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计图书借阅数失败")
	}
	return count, nil
}

// CountByMemberID 统计指定会员的借阅记录数(含历史记录)
func (r *borrowingRepository) CountByMemberID(ctx context.Context, memberID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BorrowingModel{}).Where("member_id = ?", memberID).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计会员借阅数失败")
	}
	return count, nil
}

// toBorrowingEntity GORM模型 → 领域实体
func toBorrowingEntity(model *BorrowingModel) *borrowing.Borrowing {
	return &borrowing.Borrowing{
		ID:         model.ID,
		BorrowNo:   model.BorrowNo,
		BookID:     model.BookID,
		MemberID:   model.MemberID,
		BorrowedAt: model.BorrowedAt,
		DueDate:    model.DueDate,
		ReturnedAt: model.ReturnedAt,
		Status:     borrowing.Status(model.Status),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *borrowingRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

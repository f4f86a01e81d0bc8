package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 书名全局唯一;ISBN可选,但填写时全局唯一
// 2. Stock是台账数量:初始库存减去在借(含逾期)数量,任何提交点都不允许为负
// 3. AuthorID/CategoryID只保存外键,不做对象级反向引用
type Book struct {
	ID         uint
	Title      string  // 书名(唯一)
	Year       *int    // 出版年份(可选)
	ISBN       *string // ISBN号(可选,唯一)
	Stock      int     // 当前可借库存
	AuthorID   uint    // 作者ID
	CategoryID uint    // 分类ID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBook 创建新图书(工厂方法)
// 业务规则:初始库存不能为负数
func NewBook(title string, year *int, isbn *string, stock int, authorID, categoryID uint) (*Book, error) {
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	now := time.Now()
	return &Book{
		Title:      title,
		Year:       year,
		ISBN:       isbn,
		Stock:      stock,
		AuthorID:   authorID,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// CanBorrow 判断当前是否可借出
func (b *Book) CanBorrow() bool {
	return b.Stock > 0
}

// UpdateParams 部分更新参数(指针为nil表示不更新)
type UpdateParams struct {
	Title      *string
	Year       *int
	ISBN       *string // 指向空字符串时清空ISBN
	Stock      *int
	AuthorID   *uint
	CategoryID *uint
}

package dto

import (
	"github.com/xiebiao/library/internal/domain/book"
)

// CreateBookRequest HTTP创建图书请求
// stock不加required:0是合法的初始库存(待补货的新书)
type CreateBookRequest struct {
	Title      string  `json:"title" binding:"required,max=200" example:"三体"`
	Year       *int    `json:"year" binding:"omitempty,min=0" example:"2008"`
	ISBN       *string `json:"isbn" binding:"omitempty,max=20" example:"9787536692930"`
	Stock      int     `json:"stock" binding:"min=0" example:"10"`
	AuthorID   uint    `json:"author_id" binding:"required" example:"1"`
	CategoryID uint    `json:"category_id" binding:"required" example:"1"`
}

// UpdateBookRequest HTTP更新图书请求
// 指针字段缺省(nil)表示不修改;isbn传空字符串表示清空
type UpdateBookRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=200" example:"三体"`
	Year       *int    `json:"year" binding:"omitempty,min=0" example:"2008"`
	ISBN       *string `json:"isbn" binding:"omitempty,max=20" example:"9787536692930"`
	Stock      *int    `json:"stock" example:"10"`
	AuthorID   *uint   `json:"author_id" example:"1"`
	CategoryID *uint   `json:"category_id" example:"1"`
}

// BookResponse HTTP图书响应(列表项,不展开关联)
type BookResponse struct {
	ID         uint   `json:"id" example:"1"`
	Title      string `json:"title" example:"三体"`
	Year       *int   `json:"year,omitempty" example:"2008"`
	ISBN       string `json:"isbn,omitempty" example:"9787536692930"`
	Stock      int    `json:"stock" example:"10"`
	AuthorID   uint   `json:"author_id" example:"1"`
	CategoryID uint   `json:"category_id" example:"1"`
	CreatedAt  string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt  string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// BookDetailResponse HTTP图书详情响应(嵌套作者与分类)
type BookDetailResponse struct {
	BookResponse
	Author   *AuthorResponse   `json:"author"`
	Category *CategoryResponse `json:"category"`
}

// ToBookResponse 领域实体 → HTTP响应
func ToBookResponse(b *book.Book) *BookResponse {
	isbn := ""
	if b.ISBN != nil {
		isbn = *b.ISBN
	}
	return &BookResponse{
		ID:         b.ID,
		Title:      b.Title,
		Year:       b.Year,
		ISBN:       isbn,
		Stock:      b.Stock,
		AuthorID:   b.AuthorID,
		CategoryID: b.CategoryID,
		CreatedAt:  FormatDateTime(b.CreatedAt),
		UpdatedAt:  FormatDateTime(b.UpdatedAt),
	}
}

// ToBookResponses 批量转换
func ToBookResponses(books []*book.Book) []*BookResponse {
	list := make([]*BookResponse, len(books))
	for i, b := range books {
		list[i] = ToBookResponse(b)
	}
	return list
}

// ToBookDetailResponse 图书详情 → HTTP响应
func ToBookDetailResponse(d *book.Detail) *BookDetailResponse {
	return &BookDetailResponse{
		BookResponse: *ToBookResponse(d.Book),
		Author:       ToAuthorResponse(d.Author),
		Category:     ToCategoryResponse(d.Category),
	}
}

package dto

import (
	"github.com/xiebiao/library/internal/domain/category"
)

// CreateCategoryRequest HTTP创建分类请求
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"科幻小说"`
}

// UpdateCategoryRequest HTTP更新分类请求(分类只有名称一个可变字段)
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"科幻小说"`
}

// CategoryResponse HTTP分类响应
type CategoryResponse struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"科幻小说"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ToCategoryResponse 领域实体 → HTTP响应
func ToCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: FormatDateTime(c.CreatedAt),
		UpdatedAt: FormatDateTime(c.UpdatedAt),
	}
}

// ToCategoryResponses 批量转换
func ToCategoryResponses(categories []*category.Category) []*CategoryResponse {
	list := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		list[i] = ToCategoryResponse(c)
	}
	return list
}

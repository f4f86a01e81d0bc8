package dto

import (
	"github.com/xiebiao/library/internal/domain/author"
)

// CreateAuthorRequest HTTP创建作者请求
type CreateAuthorRequest struct {
	Name      string `json:"name" binding:"required,max=100" example:"钱钟书"`
	BirthDate string `json:"birth_date" binding:"omitempty" example:"1910-11-21"` // YYYY-MM-DD,可选
}

// UpdateAuthorRequest HTTP更新作者请求
// 指针字段说明:字段缺省(nil)表示不修改;birth_date传空字符串表示清空
type UpdateAuthorRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=100" example:"钱钟书"`
	BirthDate *string `json:"birth_date" example:"1910-11-21"`
}

// AuthorResponse HTTP作者响应
type AuthorResponse struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"钱钟书"`
	BirthDate string `json:"birth_date,omitempty" example:"1910-11-21"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ToAuthorResponse 领域实体 → HTTP响应
func ToAuthorResponse(a *author.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		BirthDate: FormatDate(a.BirthDate),
		CreatedAt: FormatDateTime(a.CreatedAt),
		UpdatedAt: FormatDateTime(a.UpdatedAt),
	}
}

// ToAuthorResponses 批量转换
func ToAuthorResponses(authors []*author.Author) []*AuthorResponse {
	list := make([]*AuthorResponse, len(authors))
	for i, a := range authors {
		list[i] = ToAuthorResponse(a)
	}
	return list
}

package dto

import (
	"github.com/xiebiao/library/internal/domain/member"
)

// CreateMemberRequest HTTP创建会员请求
type CreateMemberRequest struct {
	Name    string  `json:"name" binding:"required,max=100" example:"张三"`
	Phone   string  `json:"phone" binding:"required,max=20" example:"13800138000"`
	Email   *string `json:"email" binding:"omitempty,email,max=100" example:"zhangsan@example.com"`
	Address *string `json:"address" binding:"omitempty,max=255" example:"北京市海淀区"`
}

// UpdateMemberRequest HTTP更新会员请求
// 指针字段缺省(nil)表示不修改;email传空字符串表示清空
type UpdateMemberRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100" example:"张三"`
	Phone   *string `json:"phone" binding:"omitempty,max=20" example:"13800138000"`
	Email   *string `json:"email" binding:"omitempty,max=100" example:"zhangsan@example.com"`
	Address *string `json:"address" binding:"omitempty,max=255" example:"北京市海淀区"`
}

// MemberResponse HTTP会员响应
type MemberResponse struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"张三"`
	Phone     string `json:"phone" example:"13800138000"`
	Email     string `json:"email,omitempty" example:"zhangsan@example.com"`
	Address   string `json:"address,omitempty" example:"北京市海淀区"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ToMemberResponse 领域实体 → HTTP响应
func ToMemberResponse(m *member.Member) *MemberResponse {
	email, address := "", ""
	if m.Email != nil {
		email = *m.Email
	}
	if m.Address != nil {
		address = *m.Address
	}
	return &MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     email,
		Address:   address,
		CreatedAt: FormatDateTime(m.CreatedAt),
		UpdatedAt: FormatDateTime(m.UpdatedAt),
	}
}

// ToMemberResponses 批量转换
func ToMemberResponses(members []*member.Member) []*MemberResponse {
	list := make([]*MemberResponse, len(members))
	for i, m := range members {
		list[i] = ToMemberResponse(m)
	}
	return list
}

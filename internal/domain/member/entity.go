package member

import (
	"time"
)

// Member 会员实体(聚合根)
// 手机号必填且唯一;邮箱可选,填写时唯一
type Member struct {
	ID        uint
	Name      string  // 姓名
	Phone     string  // 手机号(唯一)
	Email     *string // 邮箱(可选,唯一)
	Address   *string // 地址(可选)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMember 创建新会员(工厂方法)
func NewMember(name, phone string, email, address *string) *Member {
	now := time.Now()
	return &Member{
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateParams 部分更新参数(指针为nil表示不更新)
type UpdateParams struct {
	Name    *string
	Phone   *string
	Email   *string // 指向空字符串时清空邮箱
	Address *string
}

package author

import (
	"time"
)

// Author 作者实体(聚合根)
// 设计说明:
// 1. BirthDate为可选字段,仅保留日期部分(不含时间)
// 2. 与Book的关系通过Book.AuthorID外键表达,不做反向引用
type Author struct {
	ID        uint
	Name      string     // 姓名
	BirthDate *time.Time // 出生日期(可选,仅日期)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建新作者(工厂方法)
func NewAuthor(name string, birthDate *time.Time) *Author {
	now := time.Now()
	return &Author{
		Name:      name,
		BirthDate: birthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateParams 部分更新参数
// 指针为nil表示该字段不更新;ClearBirthDate为true时清空出生日期
type UpdateParams struct {
	Name           *string
	BirthDate      *time.Time
	ClearBirthDate bool
}

// Apply 应用部分更新
func (a *Author) Apply(params UpdateParams) {
	if params.Name != nil {
		a.Name = *params.Name
	}
	if params.ClearBirthDate {
		a.BirthDate = nil
	} else if params.BirthDate != nil {
		a.BirthDate = params.BirthDate
	}
	a.UpdatedAt = time.Now()
}

package borrowing

import (
	"time"
)

// Status 借阅状态
// 设计说明:
// 1. 对外使用固定的英文状态值(borrowed/returned/overdue)
// 2. 状态变更只能通过ApplyStatus进行,库存入账信号由它统一给出
type Status string

const (
	StatusBorrowed Status = "borrowed" // 在借(初始状态)
	StatusReturned Status = "returned" // 已归还
	StatusOverdue  Status = "overdue"  // 逾期(由调用方显式设置,没有后台任务自动判定)
)

// Valid 判断状态值是否合法
func (s Status) Valid() bool {
	switch s {
	case StatusBorrowed, StatusReturned, StatusOverdue:
		return true
	}
	return false
}

// Active 判断是否为在借状态(borrowed或overdue,库存尚未归还)
func (s Status) Active() bool {
	return s == StatusBorrowed || s == StatusOverdue
}

// Borrowing 借阅记录实体(聚合根)
// 设计说明:
// 1. BorrowNo是业务主键(ULID,全局唯一、时间有序)
// 2. 只保存BookID/MemberID外键,关联数据由读取方显式查询组装
// 3. ReturnedAt仅在转入returned时写入;实体自身不触碰库存,
//    库存增减由事务脚本根据ApplyStatus的返回值显式执行
type Borrowing struct {
	ID         uint
	BorrowNo   string     // 借阅单号(业务主键)
	BookID     uint       // 图书ID
	MemberID   uint       // 会员ID
	BorrowedAt time.Time  // 借出时间
	DueDate    time.Time  // 应还日期(仅日期)
	ReturnedAt *time.Time // 实际归还时间(仅returned状态下有值)
	Status     Status     // 借阅状态
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBorrowing 创建新借阅记录(工厂方法)
// 业务规则:
// - 借阅天数必须为正整数
// - 应还日期 = 借出日期 + 借阅天数(仅日期,不含时间)
// - 初始状态固定为borrowed,借阅记录不允许以其他状态直接插入
func NewBorrowing(borrowNo string, bookID, memberID uint, durationDays int, now time.Time) (*Borrowing, error) {
	if durationDays <= 0 {
		return nil, ErrInvalidDuration
	}

	due := now.AddDate(0, 0, durationDays)
	dueDate := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())

	return &Borrowing{
		BorrowNo:   borrowNo,
		BookID:     bookID,
		MemberID:   memberID,
		BorrowedAt: now,
		DueDate:    dueDate,
		Status:     StatusBorrowed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ApplyStatus 应用状态变更,返回本次变更是否需要归还一册库存
// 业务规则:
// 1. 转入returned且尚无归还时间时:写入归还时间,库存+1——
//    同一记录重复提交returned不会再次入账(恰好一次)
// 2. 从returned改回borrowed/overdue:保留归还时间,且不回扣库存。
//    此时库存会相对不变式少计,这是沿用既有产品行为的已知限制,不在此处修正
// 3. 转入overdue不写任何时间戳
func (b *Borrowing) ApplyStatus(target Status, now time.Time) (creditStock bool, err error) {
	if !target.Valid() {
		return false, ErrInvalidStatus
	}

	if target == StatusReturned && b.ReturnedAt == nil {
		t := now
		b.ReturnedAt = &t
		creditStock = true
	}

	b.Status = target
	b.UpdatedAt = now
	return creditStock, nil
}

package dto

import (
	appborrowing "github.com/xiebiao/library/internal/application/borrowing"
	"github.com/xiebiao/library/internal/domain/borrowing"
)

// CreateBorrowingRequest HTTP借书请求
// duration_days不加required:缺省和0都交给领域层校验,
// 统一返回"借阅天数必须为正整数"(40902)而不是笼统的绑定错误
type CreateBorrowingRequest struct {
	BookID       uint `json:"book_id" binding:"required" example:"1"`
	MemberID     uint `json:"member_id" binding:"required" example:"1"`
	DurationDays int  `json:"duration_days" example:"30"`
}

// UpdateBorrowingStatusRequest HTTP借阅状态变更请求(归还走这里)
type UpdateBorrowingStatusRequest struct {
	Status string `json:"status" binding:"required" example:"returned"`
}

// BorrowingResponse HTTP借阅记录响应
type BorrowingResponse struct {
	ID         uint   `json:"id" example:"1"`
	BorrowNo   string `json:"borrow_no" example:"01HZXW3V1R8F4YQJ0K6TPNBGSM"`
	BookID     uint   `json:"book_id" example:"1"`
	MemberID   uint   `json:"member_id" example:"1"`
	BorrowedAt string `json:"borrowed_at" example:"2024-01-15 10:30:00"`
	DueDate    string `json:"due_date" example:"2024-02-14"`
	ReturnedAt string `json:"returned_at,omitempty" example:"2024-02-10 09:00:00"`
	Status     string `json:"status" example:"borrowed"`
	CreatedAt  string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt  string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// BorrowingDetailResponse HTTP借阅详情响应(嵌套图书与会员)
type BorrowingDetailResponse struct {
	BorrowingResponse
	Book   *BookResponse   `json:"book"`
	Member *MemberResponse `json:"member"`
}

// ToBorrowingResponse 领域实体 → HTTP响应
func ToBorrowingResponse(b *borrowing.Borrowing) *BorrowingResponse {
	return &BorrowingResponse{
		ID:         b.ID,
		BorrowNo:   b.BorrowNo,
		BookID:     b.BookID,
		MemberID:   b.MemberID,
		BorrowedAt: FormatDateTime(b.BorrowedAt),
		DueDate:    b.DueDate.Format(DateLayout),
		ReturnedAt: FormatDateTimePtr(b.ReturnedAt),
		Status:     string(b.Status),
		CreatedAt:  FormatDateTime(b.CreatedAt),
		UpdatedAt:  FormatDateTime(b.UpdatedAt),
	}
}

// ToBorrowingDetailResponse 借阅详情 → HTTP响应
func ToBorrowingDetailResponse(d *appborrowing.Detail) *BorrowingDetailResponse {
	return &BorrowingDetailResponse{
		BorrowingResponse: *ToBorrowingResponse(d.Borrowing),
		Book:              ToBookResponse(d.Book),
		Member:            ToMemberResponse(d.Member),
	}
}

// ToBorrowingDetailResponses 批量转换
func ToBorrowingDetailResponses(details []*appborrowing.Detail) []*BorrowingDetailResponse {
	list := make([]*BorrowingDetailResponse, len(details))
	for i, d := range details {
		list[i] = ToBorrowingDetailResponse(d)
	}
	return list
}

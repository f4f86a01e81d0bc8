package borrowing

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrowing"
	"github.com/xiebiao/library/internal/domain/member"
)

// QueryBorrowingsUseCase 借阅查询用例(读路径,不开事务)
// 列表与详情都展开图书/会员信息,通过显式的ID查询组装
type QueryBorrowingsUseCase struct {
	borrowingRepo borrowing.Repository
	bookRepo      book.Repository
	memberRepo    member.Repository
}

// NewQueryBorrowingsUseCase 创建借阅查询用例
func NewQueryBorrowingsUseCase(
	borrowingRepo borrowing.Repository,
	bookRepo book.Repository,
	memberRepo member.Repository,
) *QueryBorrowingsUseCase {
	return &QueryBorrowingsUseCase{
		borrowingRepo: borrowingRepo,
		bookRepo:      bookRepo,
		memberRepo:    memberRepo,
	}
}

// Get 查询单条借阅详情
func (uc *QueryBorrowingsUseCase) Get(ctx context.Context, id uint) (*Detail, error) {
	bw, err := uc.borrowingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.assembleDetail(ctx, bw)
}

// List 查询全部借阅详情
func (uc *QueryBorrowingsUseCase) List(ctx context.Context) ([]*Detail, error) {
	records, err := uc.borrowingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*Detail, 0, len(records))
	for _, bw := range records {
		d, err := uc.assembleDetail(ctx, bw)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (uc *QueryBorrowingsUseCase) assembleDetail(ctx context.Context, bw *borrowing.Borrowing) (*Detail, error) {
	b, err := uc.bookRepo.FindByID(ctx, bw.BookID)
	if err != nil {
		return nil, err
	}
	m, err := uc.memberRepo.FindByID(ctx, bw.MemberID)
	if err != nil {
		return nil, err
	}
	return &Detail{Borrowing: bw, Book: b, Member: m}, nil
}

package borrowing

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrowing"
	"github.com/xiebiao/library/internal/domain/member"
)

// CreateBorrowingUseCase 借书用例
// 这是整个系统最核心的写路径:借阅记录的插入与库存扣减必须原子完成,
// 并发借阅同一本书时不允许双双通过库存校验把库存扣穿
type CreateBorrowingUseCase struct {
	borrowingRepo borrowing.Repository
	bookRepo      book.Repository
	memberRepo    member.Repository
	tx            TxRunner
}

// NewCreateBorrowingUseCase 创建借书用例
func NewCreateBorrowingUseCase(
	borrowingRepo borrowing.Repository,
	bookRepo book.Repository,
	memberRepo member.Repository,
	tx TxRunner,
) *CreateBorrowingUseCase {
	return &CreateBorrowingUseCase{
		borrowingRepo: borrowingRepo,
		bookRepo:      bookRepo,
		memberRepo:    memberRepo,
		tx:            tx,
	}
}

// CreateBorrowingRequest 借书请求
type CreateBorrowingRequest struct {
	BookID       uint // 图书ID
	MemberID     uint // 会员ID
	DurationDays int  // 借阅天数(正整数)
}

// Execute 执行借书
//
// 并发控制说明(防止库存扣穿):
// 错误做法:先SELECT库存再判断再UPDATE——两个并发请求会同时读到stock=1,
// 双双通过校验,最后卖出2册,库存变成-1
// 正确做法:事务内SELECT FOR UPDATE锁定图书行,锁内校验库存,
// 再插入借阅记录并扣减库存,COMMIT后释放锁;
// 第二个事务拿到锁时读到的已经是扣减后的库存,校验失败返回库存不足
func (uc *CreateBorrowingUseCase) Execute(ctx context.Context, req CreateBorrowingRequest) (*Detail, error) {
	// 1. 前置校验:图书/会员不存在时直接拒绝,不开启事务
	b, err := uc.bookRepo.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	if !b.CanBorrow() {
		// 快速失败;事务内锁行后还会做权威校验
		return nil, book.ErrOutOfStock
	}

	m, err := uc.memberRepo.FindByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	// 2. 构造借阅记录(借阅天数校验、应还日期计算在工厂方法内完成)
	now := time.Now()
	bw, err := borrowing.NewBorrowing(borrowing.GenerateBorrowNo(), req.BookID, req.MemberID, req.DurationDays, now)
	if err != nil {
		return nil, err
	}

	// 3. 事务:锁定图书行 → 锁内校验库存 → 插入借阅记录 → 扣减库存
	err = uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		locked, err := uc.bookRepo.LockByID(txCtx, req.BookID)
		if err != nil {
			return err
		}
		if !locked.CanBorrow() {
			return book.ErrOutOfStock
		}

		if err := uc.borrowingRepo.Create(txCtx, bw); err != nil {
			return err
		}

		// UpdateStock内部带stock+delta>=0守护,双重保险
		return uc.bookRepo.UpdateStock(txCtx, req.BookID, -1)
	})
	if err != nil {
		return nil, err
	}

	// 4. 组装详情(重新读取图书,拿到扣减后的库存)
	b, err = uc.bookRepo.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	return &Detail{Borrowing: bw, Book: b, Member: m}, nil
}

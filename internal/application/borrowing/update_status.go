package borrowing

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrowing"
	"github.com/xiebiao/library/internal/domain/member"
)

// UpdateStatusUseCase 借阅状态变更用例(归还走这里)
// 状态写入与库存归还入账在同一事务内完成;
// 借阅行先加锁,保证并发重复提交returned时库存只加一次
type UpdateStatusUseCase struct {
	borrowingRepo borrowing.Repository
	bookRepo      book.Repository
	memberRepo    member.Repository
	tx            TxRunner
}

// NewUpdateStatusUseCase 创建状态变更用例
func NewUpdateStatusUseCase(
	borrowingRepo borrowing.Repository,
	bookRepo book.Repository,
	memberRepo member.Repository,
	tx TxRunner,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		borrowingRepo: borrowingRepo,
		bookRepo:      bookRepo,
		memberRepo:    memberRepo,
		tx:            tx,
	}
}

// Execute 执行状态变更
// 业务规则:
// - status必须为borrowed/returned/overdue之一
// - 转入returned且尚无归还时间时:写入归还时间并归还一册库存(恰好一次,
//   重复提交returned对库存是no-op)
// - 从returned改回其他状态:不做库存回扣(沿用既有产品行为)
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, borrowingID uint, status string) (*Detail, error) {
	target := borrowing.Status(status)
	if !target.Valid() {
		return nil, borrowing.ErrInvalidStatus
	}

	var bw *borrowing.Borrowing
	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 锁定借阅行:两个并发的returned请求会在此串行,
		// 后到者看到的ReturnedAt已非空,不会再次入账
		locked, err := uc.borrowingRepo.LockByID(txCtx, borrowingID)
		if err != nil {
			return err
		}

		creditStock, err := locked.ApplyStatus(target, time.Now())
		if err != nil {
			return err
		}

		if err := uc.borrowingRepo.Update(txCtx, locked); err != nil {
			return err
		}

		// 库存入账是状态转移的显式步骤,不藏在别的分支里
		if creditStock {
			if err := uc.bookRepo.UpdateStock(txCtx, locked.BookID, 1); err != nil {
				return err
			}
		}

		bw = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.assembleDetail(ctx, bw)
}

// assembleDetail 组装借阅详情
func (uc *UpdateStatusUseCase) assembleDetail(ctx context.Context, bw *borrowing.Borrowing) (*Detail, error) {
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

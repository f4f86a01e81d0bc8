package borrowing

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrowing"
)

// DeleteBorrowingUseCase 删除借阅记录用例
// 删除在借(borrowed)记录视同书已归还,需在同一事务内把库存加回;
// returned/overdue记录的删除不动库存(沿用既有产品行为,
// 删除overdue记录会使库存相对不变式少计,见DESIGN.md)
type DeleteBorrowingUseCase struct {
	borrowingRepo borrowing.Repository
	bookRepo      book.Repository
	tx            TxRunner
}

// NewDeleteBorrowingUseCase 创建删除借阅用例
func NewDeleteBorrowingUseCase(
	borrowingRepo borrowing.Repository,
	bookRepo book.Repository,
	tx TxRunner,
) *DeleteBorrowingUseCase {
	return &DeleteBorrowingUseCase{
		borrowingRepo: borrowingRepo,
		bookRepo:      bookRepo,
		tx:            tx,
	}
}

// Execute 执行删除
func (uc *DeleteBorrowingUseCase) Execute(ctx context.Context, borrowingID uint) error {
	return uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		bw, err := uc.borrowingRepo.LockByID(txCtx, borrowingID)
		if err != nil {
			return err
		}

		// 删除在借记录:先归还库存再删行,同一事务保证二者不分家
		if bw.Status == borrowing.StatusBorrowed {
			if err := uc.bookRepo.UpdateStock(txCtx, bw.BookID, 1); err != nil {
				return err
			}
		}

		return uc.borrowingRepo.Delete(txCtx, borrowingID)
	})
}

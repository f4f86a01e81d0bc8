package borrowing

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrowing"
	"github.com/xiebiao/library/internal/domain/member"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

func TestCreateBorrowing(t *testing.T) {
	ctx := context.Background()

	setup := func() (*testEnv, *CreateBorrowingUseCase) {
		env := newTestEnv()
		env.store.addBook(&book.Book{ID: 1, Title: "三体", Stock: 3, AuthorID: 1, CategoryID: 1})
		env.store.addMember(&member.Member{ID: 1, Name: "张三", Phone: "13800138000"})
		uc := NewCreateBorrowingUseCase(env.borrowingRepo, env.bookRepo, env.memberRepo, env.tx)
		return env, uc
	}

	t.Run("正常借书", func(t *testing.T) {
		env, uc := setup()

		d, err := uc.Execute(ctx, CreateBorrowingRequest{BookID: 1, MemberID: 1, DurationDays: 30})
		require.NoError(t, err)

		assert.Equal(t, borrowing.StatusBorrowed, d.Borrowing.Status)
		assert.NotEmpty(t, d.Borrowing.BorrowNo)
		assert.Nil(t, d.Borrowing.ReturnedAt)
		assert.Equal(t, 2, d.Book.Stock, "库存扣减一册")
		assert.Equal(t, "张三", d.Member.Name)

		// 记录已落库
		assert.Len(t, env.store.borrowings, 1)
	})

	t.Run("库存为0快速失败", func(t *testing.T) {
		env, uc := setup()
		env.store.books[1].Stock = 0

		_, err := uc.Execute(ctx, CreateBorrowingRequest{BookID: 1, MemberID: 1, DurationDays: 30})
		assert.ErrorIs(t, err, book.ErrOutOfStock)
		assert.Empty(t, env.store.borrowings, "不产生借阅记录")
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, uc := setup()

		_, err := uc.Execute(ctx, CreateBorrowingRequest{BookID: 999, MemberID: 1, DurationDays: 30})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("会员不存在", func(t *testing.T) {
		env, uc := setup()

		_, err := uc.Execute(ctx, CreateBorrowingRequest{BookID: 1, MemberID: 999, DurationDays: 30})
		assert.ErrorIs(t, err, member.ErrMemberNotFound)
		assert.Equal(t, 3, env.store.books[1].Stock, "库存保持不变")
	})

	t.Run("借阅天数非法", func(t *testing.T) {
		env, uc := setup()

		_, err := uc.Execute(ctx, CreateBorrowingRequest{BookID: 1, MemberID: 1, DurationDays: 0})
		assert.ErrorIs(t, err, borrowing.ErrInvalidDuration)

		_, err = uc.Execute(ctx, CreateBorrowingRequest{BookID: 1, MemberID: 1, DurationDays: -7})
		assert.ErrorIs(t, err, borrowing.ErrInvalidDuration)

		assert.Equal(t, 3, env.store.books[1].Stock, "库存保持不变")
		assert.Empty(t, env.store.borrowings)
	})

	t.Run("插入失败时库存回滚", func(t *testing.T) {
		env, uc := setup()
		env.borrowingRepo.failCreate = apperrors.ErrDatabaseError

		_, err := uc.Execute(ctx, CreateBorrowingRequest{BookID: 1, MemberID: 1, DurationDays: 30})
		require.Error(t, err)

		assert.Equal(t, 3, env.store.books[1].Stock, "事务回滚后库存不变")
		assert.Empty(t, env.store.borrowings)
	})
}

// TestCreateBorrowingConcurrency 并发借阅防扣穿
// 场景:库存1本,两个并发请求借同一本书——
// 恰好一个成功,另一个返回库存不足,最终库存为0且只有一条借阅记录
func TestCreateBorrowingConcurrency(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv()
	env.store.addBook(&book.Book{ID: 1, Title: "三体", Stock: 1, AuthorID: 1, CategoryID: 1})
	env.store.addMember(&member.Member{ID: 1, Name: "张三", Phone: "13800138000"})
	env.store.addMember(&member.Member{ID: 2, Name: "李四", Phone: "13900139000"})
	uc := NewCreateBorrowingUseCase(env.borrowingRepo, env.bookRepo, env.memberRepo, env.tx)

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		successCount int
		failCount    int
	)

	for memberID := uint(1); memberID <= 2; memberID++ {
		wg.Add(1)
		go func(mid uint) {
			defer wg.Done()

			_, err := uc.Execute(ctx, CreateBorrowingRequest{BookID: 1, MemberID: mid, DurationDays: 14})

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successCount++
			} else {
				failCount++
				assert.ErrorIs(t, err, book.ErrOutOfStock)
			}
		}(memberID)
	}
	wg.Wait()

	assert.Equal(t, 1, successCount, "恰好一个请求成功")
	assert.Equal(t, 1, failCount)
	assert.Equal(t, 0, env.store.books[1].Stock, "库存恰好扣到0")
	assert.Len(t, env.store.borrowings, 1, "只产生一条借阅记录")
}

package borrowing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBorrowing(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("正常创建", func(t *testing.T) {
		bw, err := NewBorrowing("01HZXW3V1R8F4YQJ0K6TPNBGSM", 1, 2, 30, now)
		require.NoError(t, err)

		assert.Equal(t, uint(1), bw.BookID)
		assert.Equal(t, uint(2), bw.MemberID)
		assert.Equal(t, StatusBorrowed, bw.Status)
		assert.Equal(t, now, bw.BorrowedAt)
		assert.Nil(t, bw.ReturnedAt)

		// 应还日期 = 借出日期+30天,且只保留日期部分
		assert.Equal(t, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), bw.DueDate)
	})

	t.Run("跨月跨年的应还日期", func(t *testing.T) {
		dec := time.Date(2024, 12, 20, 23, 59, 0, 0, time.UTC)
		bw, err := NewBorrowing("no-1", 1, 1, 15, dec)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), bw.DueDate)
	})

	t.Run("借阅天数为0应失败", func(t *testing.T) {
		_, err := NewBorrowing("no-1", 1, 1, 0, now)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("借阅天数为负应失败", func(t *testing.T) {
		_, err := NewBorrowing("no-1", 1, 1, -7, now)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusBorrowed.Valid())
	assert.True(t, StatusReturned.Valid())
	assert.True(t, StatusOverdue.Valid())
	assert.False(t, Status("lost").Valid())
	assert.False(t, Status("").Valid())
	// 状态值区分大小写
	assert.False(t, Status("Borrowed").Valid())
}

func TestStatusActive(t *testing.T) {
	assert.True(t, StatusBorrowed.Active())
	assert.True(t, StatusOverdue.Active())
	assert.False(t, StatusReturned.Active())
}

func TestApplyStatus(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	newRecord := func() *Borrowing {
		bw, err := NewBorrowing("no-1", 1, 1, 30, base)
		require.NoError(t, err)
		return bw
	}

	t.Run("非法状态被拒绝", func(t *testing.T) {
		bw := newRecord()
		_, err := bw.ApplyStatus(Status("lost"), base)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		// 记录保持不变
		assert.Equal(t, StatusBorrowed, bw.Status)
	})

	t.Run("首次归还写入时间并要求库存入账", func(t *testing.T) {
		bw := newRecord()
		returnTime := base.Add(48 * time.Hour)

		credit, err := bw.ApplyStatus(StatusReturned, returnTime)
		require.NoError(t, err)

		assert.True(t, credit, "首次归还应归还一册库存")
		assert.Equal(t, StatusReturned, bw.Status)
		require.NotNil(t, bw.ReturnedAt)
		assert.Equal(t, returnTime, *bw.ReturnedAt)
	})

	t.Run("重复归还不再入账", func(t *testing.T) {
		bw := newRecord()
		first := base.Add(24 * time.Hour)
		second := base.Add(72 * time.Hour)

		credit, err := bw.ApplyStatus(StatusReturned, first)
		require.NoError(t, err)
		require.True(t, credit)

		credit, err = bw.ApplyStatus(StatusReturned, second)
		require.NoError(t, err)

		assert.False(t, credit, "重复提交returned不得再次入账")
		// 归还时间保持第一次的值
		assert.Equal(t, first, *bw.ReturnedAt)
	})

	t.Run("转入overdue不写时间戳不动库存", func(t *testing.T) {
		bw := newRecord()

		credit, err := bw.ApplyStatus(StatusOverdue, base.Add(time.Hour))
		require.NoError(t, err)

		assert.False(t, credit)
		assert.Equal(t, StatusOverdue, bw.Status)
		assert.Nil(t, bw.ReturnedAt)
	})

	t.Run("逾期后归还照常入账", func(t *testing.T) {
		bw := newRecord()

		_, err := bw.ApplyStatus(StatusOverdue, base.Add(time.Hour))
		require.NoError(t, err)

		credit, err := bw.ApplyStatus(StatusReturned, base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.True(t, credit)
	})

	t.Run("已归还改回在借保留归还时间且不回扣", func(t *testing.T) {
		bw := newRecord()
		returnTime := base.Add(24 * time.Hour)

		credit, err := bw.ApplyStatus(StatusReturned, returnTime)
		require.NoError(t, err)
		require.True(t, credit)

		credit, err = bw.ApplyStatus(StatusBorrowed, base.Add(48*time.Hour))
		require.NoError(t, err)

		assert.False(t, credit, "离开returned不做库存回扣")
		assert.Equal(t, StatusBorrowed, bw.Status)
		require.NotNil(t, bw.ReturnedAt, "归还时间保留")
		assert.Equal(t, returnTime, *bw.ReturnedAt)
	})

	t.Run("改回在借后再次归还不重复入账", func(t *testing.T) {
		// returned → borrowed → returned:ReturnedAt始终非空,第二次returned不入账
		bw := newRecord()

		credit, err := bw.ApplyStatus(StatusReturned, base.Add(time.Hour))
		require.NoError(t, err)
		require.True(t, credit)

		_, err = bw.ApplyStatus(StatusBorrowed, base.Add(2*time.Hour))
		require.NoError(t, err)

		credit, err = bw.ApplyStatus(StatusReturned, base.Add(3*time.Hour))
		require.NoError(t, err)
		assert.False(t, credit)
	})
}

func TestGenerateBorrowNo(t *testing.T) {
	no1 := GenerateBorrowNo()
	no2 := GenerateBorrowNo()

	assert.Len(t, no1, 26, "ULID固定26字符")
	assert.NotEqual(t, no1, no2, "借阅单号全局唯一")
}

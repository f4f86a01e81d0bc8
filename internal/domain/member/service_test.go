package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存会员仓储
type fakeRepository struct {
	nextID  uint
	members map[uint]*Member
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, members: make(map[uint]*Member)}
}

func (r *fakeRepository) Create(_ context.Context, m *Member) error {
	m.ID = r.nextID
	r.nextID++
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id uint) (*Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, ErrMemberNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeRepository) FindByPhone(_ context.Context, phone string) (*Member, error) {
	for _, m := range r.members {
		if m.Phone == phone {
			cp := *m
			return &cp, nil
		}
	}
	return nil, ErrMemberNotFound
}

func (r *fakeRepository) FindByEmail(_ context.Context, email string) (*Member, error) {
	for _, m := range r.members {
		if m.Email != nil && *m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, ErrMemberNotFound
}

func (r *fakeRepository) Update(_ context.Context, m *Member) error {
	if _, ok := r.members[m.ID]; !ok {
		return ErrMemberNotFound
	}
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id uint) error {
	if _, ok := r.members[id]; !ok {
		return ErrMemberNotFound
	}
	delete(r.members, id)
	return nil
}

func (r *fakeRepository) List(_ context.Context) ([]*Member, error) {
	list := make([]*Member, 0, len(r.members))
	for _, m := range r.members {
		cp := *m
		list = append(list, &cp)
	}
	return list, nil
}

// fakeBorrowingCounter 固定计数的借阅计数器
type fakeBorrowingCounter struct {
	count int64
}

func (c *fakeBorrowingCounter) CountByMemberID(_ context.Context, _ uint) (int64, error) {
	return c.count, nil
}

func strPtr(s string) *string { return &s }

func TestCreateMember(t *testing.T) {
	ctx := context.Background()

	t.Run("正常创建", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBorrowingCounter{})

		m, err := svc.CreateMember(ctx, CreateParams{
			Name:  "张三",
			Phone: "13800138000",
			Email: strPtr("zhangsan@example.com"),
		})
		require.NoError(t, err)

		assert.NotZero(t, m.ID)
		assert.Equal(t, "13800138000", m.Phone)
	})

	t.Run("手机号重复", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBorrowingCounter{})

		_, err := svc.CreateMember(ctx, CreateParams{Name: "张三", Phone: "13800138000"})
		require.NoError(t, err)

		_, err = svc.CreateMember(ctx, CreateParams{Name: "李四", Phone: "13800138000"})
		assert.ErrorIs(t, err, ErrPhoneDuplicate)
	})

	t.Run("邮箱重复", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBorrowingCounter{})

		_, err := svc.CreateMember(ctx, CreateParams{
			Name: "张三", Phone: "13800138000", Email: strPtr("same@example.com"),
		})
		require.NoError(t, err)

		_, err = svc.CreateMember(ctx, CreateParams{
			Name: "李四", Phone: "13900139000", Email: strPtr("same@example.com"),
		})
		assert.ErrorIs(t, err, ErrEmailDuplicate)
	})

	t.Run("邮箱缺省时不校验唯一性", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBorrowingCounter{})

		_, err := svc.CreateMember(ctx, CreateParams{Name: "张三", Phone: "13800138000"})
		require.NoError(t, err)

		_, err = svc.CreateMember(ctx, CreateParams{Name: "李四", Phone: "13900139000"})
		assert.NoError(t, err, "两个无邮箱的会员互不冲突")
	})
}

func TestUpdateMember(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, uint) {
		svc := NewService(newFakeRepository(), &fakeBorrowingCounter{})
		m, err := svc.CreateMember(ctx, CreateParams{
			Name: "张三", Phone: "13800138000", Email: strPtr("zhangsan@example.com"),
		})
		require.NoError(t, err)
		return svc, m.ID
	}

	t.Run("部分更新只改姓名", func(t *testing.T) {
		svc, id := setup(t)

		m, err := svc.UpdateMember(ctx, id, UpdateParams{Name: strPtr("张叁")})
		require.NoError(t, err)

		assert.Equal(t, "张叁", m.Name)
		assert.Equal(t, "13800138000", m.Phone, "缺省字段保持不变")
	})

	t.Run("清空邮箱", func(t *testing.T) {
		svc, id := setup(t)

		m, err := svc.UpdateMember(ctx, id, UpdateParams{Email: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, m.Email)
	})

	t.Run("改为自己的手机号不算重复", func(t *testing.T) {
		svc, id := setup(t)

		_, err := svc.UpdateMember(ctx, id, UpdateParams{Phone: strPtr("13800138000")})
		assert.NoError(t, err)
	})

	t.Run("改为他人的手机号被拒绝", func(t *testing.T) {
		svc, id := setup(t)

		_, err := svc.CreateMember(ctx, CreateParams{Name: "李四", Phone: "13900139000"})
		require.NoError(t, err)

		_, err = svc.UpdateMember(ctx, id, UpdateParams{Phone: strPtr("13900139000")})
		assert.ErrorIs(t, err, ErrPhoneDuplicate)
	})
}

func TestDeleteMember(t *testing.T) {
	ctx := context.Background()

	t.Run("无借阅记录时删除成功", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBorrowingCounter{count: 0})

		m, err := svc.CreateMember(ctx, CreateParams{Name: "张三", Phone: "13800138000"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteMember(ctx, m.ID))

		_, err = svc.GetMember(ctx, m.ID)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})

	t.Run("存在借阅记录时拒绝删除", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBorrowingCounter{count: 1})

		m, err := svc.CreateMember(ctx, CreateParams{Name: "张三", Phone: "13800138000"})
		require.NoError(t, err)

		err = svc.DeleteMember(ctx, m.ID)
		assert.ErrorIs(t, err, ErrHasBorrowings)

		_, err = svc.GetMember(ctx, m.ID)
		assert.NoError(t, err, "会员保持不变")
	})
}

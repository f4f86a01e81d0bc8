package author

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存作者仓储
type fakeRepository struct {
	nextID  uint
	authors map[uint]*Author
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, authors: make(map[uint]*Author)}
}

func (r *fakeRepository) Create(_ context.Context, a *Author) error {
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id uint) (*Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepository) FindByName(_ context.Context, name string) (*Author, error) {
	for _, a := range r.authors {
		if a.Name == name {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrAuthorNotFound
}

func (r *fakeRepository) Update(_ context.Context, a *Author) error {
	if _, ok := r.authors[a.ID]; !ok {
		return ErrAuthorNotFound
	}
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id uint) error {
	if _, ok := r.authors[id]; !ok {
		return ErrAuthorNotFound
	}
	delete(r.authors, id)
	return nil
}

func (r *fakeRepository) List(_ context.Context) ([]*Author, error) {
	list := make([]*Author, 0, len(r.authors))
	for _, a := range r.authors {
		cp := *a
		list = append(list, &cp)
	}
	return list, nil
}

// fakeBookCounter 固定计数的图书计数器
type fakeBookCounter struct {
	count int64
}

func (c *fakeBookCounter) CountByAuthorID(_ context.Context, _ uint) (int64, error) {
	return c.count, nil
}

func TestCreateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("正常创建", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})

		birth := time.Date(1910, 11, 21, 0, 0, 0, 0, time.UTC)
		a, err := svc.CreateAuthor(ctx, "钱钟书", &birth)
		require.NoError(t, err)

		assert.NotZero(t, a.ID)
		assert.Equal(t, "钱钟书", a.Name)
		require.NotNil(t, a.BirthDate)
		assert.Equal(t, birth, *a.BirthDate)
	})

	t.Run("出生日期可选", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})

		a, err := svc.CreateAuthor(ctx, "无名氏", nil)
		require.NoError(t, err)
		assert.Nil(t, a.BirthDate)
	})

	t.Run("同名作者被拒绝", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})

		_, err := svc.CreateAuthor(ctx, "鲁迅", nil)
		require.NoError(t, err)

		_, err = svc.CreateAuthor(ctx, "鲁迅", nil)
		assert.ErrorIs(t, err, ErrNameDuplicate)
	})
}

func TestUpdateAuthor(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, uint) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})
		birth := time.Date(1881, 9, 25, 0, 0, 0, 0, time.UTC)
		a, err := svc.CreateAuthor(ctx, "鲁迅", &birth)
		require.NoError(t, err)
		return svc, a.ID
	}

	t.Run("部分更新只改姓名", func(t *testing.T) {
		svc, id := setup(t)

		name := "周树人"
		a, err := svc.UpdateAuthor(ctx, id, UpdateParams{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, "周树人", a.Name)
		assert.NotNil(t, a.BirthDate, "缺省字段保持不变")
	})

	t.Run("清空出生日期", func(t *testing.T) {
		svc, id := setup(t)

		a, err := svc.UpdateAuthor(ctx, id, UpdateParams{ClearBirthDate: true})
		require.NoError(t, err)
		assert.Nil(t, a.BirthDate)
	})

	t.Run("作者不存在", func(t *testing.T) {
		svc, _ := setup(t)

		name := "张三"
		_, err := svc.UpdateAuthor(ctx, 999, UpdateParams{Name: &name})
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})
}

func TestDeleteAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("无图书时删除成功", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo, &fakeBookCounter{count: 0})

		a, err := svc.CreateAuthor(ctx, "鲁迅", nil)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteAuthor(ctx, a.ID))

		_, err = svc.GetAuthor(ctx, a.ID)
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})

	t.Run("名下有图书时拒绝删除", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo, &fakeBookCounter{count: 3})

		a, err := svc.CreateAuthor(ctx, "鲁迅", nil)
		require.NoError(t, err)

		err = svc.DeleteAuthor(ctx, a.ID)
		assert.ErrorIs(t, err, ErrHasBooks)

		// 作者保持不变
		_, err = svc.GetAuthor(ctx, a.ID)
		assert.NoError(t, err)
	})

	t.Run("作者不存在", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})
		err := svc.DeleteAuthor(ctx, 999)
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})
}

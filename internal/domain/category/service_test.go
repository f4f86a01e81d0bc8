package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存分类仓储
type fakeRepository struct {
	nextID     uint
	categories map[uint]*Category
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, categories: make(map[uint]*Category)}
}

func (r *fakeRepository) Create(_ context.Context, c *Category) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id uint) (*Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepository) FindByName(_ context.Context, name string) (*Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r *fakeRepository) Update(_ context.Context, c *Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return ErrCategoryNotFound
	}
	// 唯一索引兜底:模拟数据库对重名更新的拒绝
	for id, other := range r.categories {
		if id != c.ID && other.Name == c.Name {
			return ErrNameDuplicate
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id uint) error {
	if _, ok := r.categories[id]; !ok {
		return ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeRepository) List(_ context.Context) ([]*Category, error) {
	list := make([]*Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

// fakeBookCounter 固定计数的图书计数器
type fakeBookCounter struct {
	count int64
}

func (c *fakeBookCounter) CountByCategoryID(_ context.Context, _ uint) (int64, error) {
	return c.count, nil
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("正常创建", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})

		c, err := svc.CreateCategory(ctx, "科幻")
		require.NoError(t, err)
		assert.NotZero(t, c.ID)
		assert.Equal(t, "科幻", c.Name)
	})

	t.Run("重名分类被拒绝", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})

		_, err := svc.CreateCategory(ctx, "科幻")
		require.NoError(t, err)

		_, err = svc.CreateCategory(ctx, "科幻")
		assert.ErrorIs(t, err, ErrNameDuplicate)
	})
}

func TestRenameCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("正常改名", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})

		c, err := svc.CreateCategory(ctx, "科幻")
		require.NoError(t, err)

		renamed, err := svc.RenameCategory(ctx, c.ID, "硬科幻")
		require.NoError(t, err)
		assert.Equal(t, "硬科幻", renamed.Name)
	})

	t.Run("改成已有名称被拒绝", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})

		_, err := svc.CreateCategory(ctx, "科幻")
		require.NoError(t, err)
		c, err := svc.CreateCategory(ctx, "文学")
		require.NoError(t, err)

		_, err = svc.RenameCategory(ctx, c.ID, "科幻")
		assert.ErrorIs(t, err, ErrNameDuplicate)
	})

	t.Run("分类不存在", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})
		_, err := svc.RenameCategory(ctx, 999, "科幻")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("无图书时删除成功", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{count: 0})

		c, err := svc.CreateCategory(ctx, "科幻")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteCategory(ctx, c.ID))

		_, err = svc.GetCategory(ctx, c.ID)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("分类下有图书时拒绝删除", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{count: 2})

		c, err := svc.CreateCategory(ctx, "科幻")
		require.NoError(t, err)

		err = svc.DeleteCategory(ctx, c.ID)
		assert.ErrorIs(t, err, ErrHasBooks)

		_, err = svc.GetCategory(ctx, c.ID)
		assert.NoError(t, err)
	})

	t.Run("分类不存在", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeBookCounter{})
		err := svc.DeleteCategory(ctx, 999)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

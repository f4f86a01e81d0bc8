package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/category"
)

// 作者/分类详情的旁路缓存(Cache-Aside)装饰器
// 设计说明:
// 1. 只缓存按ID的详情读取——作者/分类数据变更频率低,收益最大;
//    图书库存在借阅事务里高频变化,图书详情不做缓存,避免读到过期库存
// 2. 写路径(Update/Delete)先落库再删缓存,下一次读取回源重建
// 3. Redis故障不阻塞请求:读缓存失败时直接回源,写缓存失败只记日志
// 4. Key设计:author:detail:{id}、category:detail:{id}

// CachedAuthorRepository 带缓存的作者仓储装饰器
type CachedAuthorRepository struct {
	author.Repository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedAuthorRepository 创建带缓存的作者仓储
func NewCachedAuthorRepository(repo author.Repository, client *redis.Client, ttl time.Duration) author.Repository {
	return &CachedAuthorRepository{Repository: repo, client: client, ttl: ttl}
}

func authorKey(id uint) string {
	return fmt.Sprintf("author:detail:%d", id)
}

// FindByID 优先读缓存,未命中回源并写入缓存
func (r *CachedAuthorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	key := authorKey(id)

	val, err := r.client.Get(ctx, key).Result()
	if err == nil {
		var a author.Author
		if err := json.Unmarshal([]byte(val), &a); err == nil {
			return &a, nil
		}
		// 缓存内容损坏,删掉后回源
		r.client.Del(ctx, key)
	}

	a, err := r.Repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(a); err == nil {
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
			log.Printf("[WARN] 写入作者缓存失败: %v", err)
		}
	}
	return a, nil
}

// Update 更新后删除缓存
func (r *CachedAuthorRepository) Update(ctx context.Context, a *author.Author) error {
	if err := r.Repository.Update(ctx, a); err != nil {
		return err
	}
	if err := r.client.Del(ctx, authorKey(a.ID)).Err(); err != nil {
		log.Printf("[WARN] 删除作者缓存失败: %v", err)
	}
	return nil
}

// Delete 删除后清理缓存
func (r *CachedAuthorRepository) Delete(ctx context.Context, id uint) error {
	if err := r.Repository.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.client.Del(ctx, authorKey(id)).Err(); err != nil {
		log.Printf("[WARN] 删除作者缓存失败: %v", err)
	}
	return nil
}

// CachedCategoryRepository 带缓存的分类仓储装饰器
type CachedCategoryRepository struct {
	category.Repository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedCategoryRepository 创建带缓存的分类仓储
func NewCachedCategoryRepository(repo category.Repository, client *redis.Client, ttl time.Duration) category.Repository {
	return &CachedCategoryRepository{Repository: repo, client: client, ttl: ttl}
}

func categoryKey(id uint) string {
	return fmt.Sprintf("category:detail:%d", id)
}

// FindByID 优先读缓存,未命中回源并写入缓存
func (r *CachedCategoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	key := categoryKey(id)

	val, err := r.client.Get(ctx, key).Result()
	if err == nil {
		var c category.Category
		if err := json.Unmarshal([]byte(val), &c); err == nil {
			return &c, nil
		}
		r.client.Del(ctx, key)
	}

	c, err := r.Repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(c); err == nil {
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
			log.Printf("[WARN] 写入分类缓存失败: %v", err)
		}
	}
	return c, nil
}

// Update 更新后删除缓存
func (r *CachedCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if err := r.Repository.Update(ctx, c); err != nil {
		return err
	}
	if err := r.client.Del(ctx, categoryKey(c.ID)).Err(); err != nil {
		log.Printf("[WARN] 删除分类缓存失败: %v", err)
	}
	return nil
}

// Delete 删除后清理缓存
func (r *CachedCategoryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.Repository.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.client.Del(ctx, categoryKey(id)).Err(); err != nil {
		log.Printf("[WARN] 删除分类缓存失败: %v", err)
	}
	return nil
}

// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"news_backend/internal/feature/article/domain/entity"
	"news_backend/internal/feature/article/usecase"
)

// DefaultTTL bounds how long a cached read may lag behind the store.
const DefaultTTL = 5 * time.Minute

// CachingArticleRepository decorates an ArticleRepository with Redis caching.
// Reads go through the cache; every successful write invalidates the list entry
// and the entry of the written id.
type CachingArticleRepository struct {
	inner     usecase.ArticleRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ArticleRepository = (*CachingArticleRepository)(nil)

// NewCachingArticleRepository decorates an ArticleRepository with Redis caching.
// If ttl is 0, it defaults to DefaultTTL. If namespace is empty, it uses "news".
// A nil rdb bypasses the cache entirely.
func NewCachingArticleRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ArticleRepository, namespace string) *CachingArticleRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "news"
	}
	return &CachingArticleRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create stores the article and drops the cached list.
func (c *CachingArticleRepository) Create(ctx context.Context, a *entity.Article) error {
	if err := c.inner.Create(ctx, a); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey())
	return nil
}

// List returns the cached list or loads it from the inner repository.
func (c *CachingArticleRepository) List(ctx context.Context) ([]entity.Article, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()
	var out []entity.Article
	if c.load(ctx, key, &out) {
		return out, nil
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// FindByID returns the cached article or loads it from the inner repository.
// Misses are not cached.
func (c *CachingArticleRepository) FindByID(ctx context.Context, id uint) (*entity.Article, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.itemKey(id)
	var cached entity.Article
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	a, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, a)
	return a, nil
}

// Update writes through and invalidates the list and the item.
func (c *CachingArticleRepository) Update(ctx context.Context, a *entity.Article) (int64, error) {
	rows, err := c.inner.Update(ctx, a)
	if err != nil {
		return 0, err
	}
	if rows > 0 {
		c.invalidate(ctx, c.listKey(), c.itemKey(a.ID))
	}
	return rows, nil
}

// Delete writes through and invalidates the list and the item.
func (c *CachingArticleRepository) Delete(ctx context.Context, id uint) (int64, error) {
	rows, err := c.inner.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if rows > 0 {
		c.invalidate(ctx, c.listKey(), c.itemKey(id))
	}
	return rows, nil
}

// load reports whether key held a decodable value. Corrupted entries are deleted.
func (c *CachingArticleRepository) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store caches v under key (best effort).
func (c *CachingArticleRepository) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		slog.Warn("failed to cache articles", "key", key, "error", err)
	}
}

// invalidate deletes keys (best effort). Entries that survive expire after ttl.
func (c *CachingArticleRepository) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("failed to invalidate article cache", "keys", keys, "error", err)
	}
}

func (c *CachingArticleRepository) listKey() string {
	return c.namespace + ":list"
}

func (c *CachingArticleRepository) itemKey(id uint) string {
	return c.namespace + ":id:" + strconv.FormatUint(uint64(id), 10)
}

// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	articleadapters "news_backend/internal/feature/article/adapters"
	articleusecase "news_backend/internal/feature/article/usecase"
	"news_backend/internal/platform/cache"
)

// NewArticleRepository creates an ArticleRepository implementation.
// If Redis is available, the GORM repository is wrapped with a read-through cache.
// Otherwise, it is used directly.
func NewArticleRepository(rdb *redis.Client, ttl time.Duration, db *gorm.DB) articleusecase.ArticleRepository {
	repo := articleadapters.NewArticleRepository(db)
	if rdb != nil {
		return cache.NewCachingArticleRepository(rdb, ttl, repo, "news")
	}
	return repo
}

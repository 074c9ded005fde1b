package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"news_backend/internal/app/router"
	accountadapters "news_backend/internal/feature/account/adapters"
	accounthandler "news_backend/internal/feature/account/transport/handler"
	accountusecase "news_backend/internal/feature/account/usecase"
	articlehandler "news_backend/internal/feature/article/transport/handler"
	articleusecase "news_backend/internal/feature/article/usecase"
	dbplatform "news_backend/internal/platform/db"
	"news_backend/internal/platform/hash"
	healthhandler "news_backend/internal/platform/http/handler"
)

// Options tunes the components built by NewHandlers.
type Options struct {
	BcryptCost  int
	HashWorkers int
	CacheTTL    time.Duration
}

// NewHandlers builds repositories, usecases and handlers on top of db.
// rdb may be nil.
func NewHandlers(db *gorm.DB, rdb *redis.Client, opts Options) router.Handlers {
	// Repository
	userRepo := accountadapters.NewUserRepository(db)
	articleRepo := NewArticleRepository(rdb, opts.CacheTTL, db)

	// Usecase
	hasher := hash.NewBcryptHasher(opts.BcryptCost, opts.HashWorkers)
	accountUC := accountusecase.NewAccountUsecase(userRepo, hasher)
	articleUC := articleusecase.NewArticleUsecase(articleRepo)

	// Handler
	return router.Handlers{
		Account: accounthandler.NewAccountHandler(accountUC),
		Article: articlehandler.NewArticleHandler(articleUC),
		Health: healthhandler.NewHealth(func(ctx context.Context) error {
			return dbplatform.Ping(ctx, db)
		}),
	}
}

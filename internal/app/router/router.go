// Package router wires HTTP routes to handlers.
package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accounthandler "news_backend/internal/feature/account/transport/handler"
	articlehandler "news_backend/internal/feature/article/transport/handler"
	"news_backend/internal/platform/http/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Account *accounthandler.AccountHandler
	Article *articlehandler.ArticleHandler
	Health  gin.HandlerFunc
}

func NewRouter(h Handlers, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	// ブラウザからのクロスオリジンアクセスを許可
	r.Use(cors.Default())

	// 導通確認用
	if h.Health != nil {
		r.GET("/healthz", h.Health)
		r.HEAD("/healthz", h.Health)
	}

	// 新規ユーザー登録
	r.POST("/register", h.Account.Register)
	// ログイン（トークンは発行しない）
	r.POST("/login", h.Account.Login)

	users := r.Group("/users")
	{
		users.GET("", h.Account.List)
		users.GET("/:id", h.Account.Get)
		users.PUT("/:id", h.Account.Update)
		users.DELETE("/:id", h.Account.Delete)
	}

	news := r.Group("/news")
	{
		news.POST("", h.Article.Create)
		news.GET("", h.Article.List)
		news.GET("/:id", h.Article.Get)
		news.PUT("/:id", h.Article.Update)
		news.DELETE("/:id", h.Article.Delete)
	}

	return r
}

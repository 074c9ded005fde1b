// Package handler はarticleフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"news_backend/internal/api"
	"news_backend/internal/feature/article/domain/entity"
	"news_backend/internal/feature/article/transport/http/dto"
)

// ArticleUsecase はハンドラーが利用する記事操作を定義します。
type ArticleUsecase interface {
	CreateArticle(ctx context.Context, title, content string) (*entity.Article, error)
	ListArticles(ctx context.Context) ([]entity.Article, error)
	GetArticle(ctx context.Context, id uint) (*entity.Article, error)
	UpdateArticle(ctx context.Context, id uint, title, content string) error
	DeleteArticle(ctx context.Context, id uint) error
}

// ArticleHandler は /news 以下のHTTPリクエストを処理します。
type ArticleHandler struct {
	articles ArticleUsecase
}

// NewArticleHandler はArticleHandlerの新しいインスタンスを生成します。
func NewArticleHandler(articles ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// Create は POST /news を処理します。
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.ArticleReq
	if err := api.BindJSON(c, &req); err != nil {
		api.WriteError(c, err)
		return
	}
	article, err := h.articles.CreateArticle(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("news created", "news_id", article.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewArticleRes(*article))
}

// List は GET /news を処理します。
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.ListArticles(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleListRes(articles))
}

// Get は GET /news/:id を処理します。
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := api.ParseID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	article, err := h.articles.GetArticle(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleRes(*article))
}

// Update は PUT /news/:id を処理します。
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := api.ParseID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	var req dto.ArticleReq
	if err := api.BindJSON(c, &req); err != nil {
		api.WriteError(c, err)
		return
	}
	if err := h.articles.UpdateArticle(c.Request.Context(), id, req.Title, req.Content); err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("news updated", "news_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "News updated"})
}

// Delete は DELETE /news/:id を処理します。
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := api.ParseID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	if err := h.articles.DeleteArticle(c.Request.Context(), id); err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("news deleted", "news_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "News deleted"})
}

// Package usecase はarticleフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"news_backend/internal/feature/article/domain/entity"
	"news_backend/internal/shared/apperr"
)

// ArticleRepository はニュース記事の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type ArticleRepository interface {
	// Create は記事を永続化し、採番されたIDを設定します。
	Create(ctx context.Context, article *entity.Article) error
	// List は全記事をID昇順で返します。
	List(ctx context.Context) ([]entity.Article, error)
	// FindByID は該当する記事がない場合、ErrArticleNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Article, error)
	// Update はタイトルと本文を上書きし、一致した行数を返します。
	Update(ctx context.Context, article *entity.Article) (int64, error)
	// Delete は削除した行数を返します。
	Delete(ctx context.Context, id uint) (int64, error)
}

type articleUsecase struct {
	articles ArticleRepository
}

// NewArticleUsecase はarticleUsecaseの新しいインスタンスを生成します。
func NewArticleUsecase(articles ArticleRepository) *articleUsecase {
	return &articleUsecase{articles: articles}
}

// CreateArticle は新しい記事を登録します。タイトルと本文はどちらも必須です。
func (u *articleUsecase) CreateArticle(ctx context.Context, title, content string) (*entity.Article, error) {
	if title == "" || content == "" {
		return nil, apperr.Validation(msgTitleContentRequired)
	}

	article := &entity.Article{Title: title, Content: content}
	if err := u.articles.Create(ctx, article); err != nil {
		return nil, apperr.OrInternal(err, "failed to create article")
	}
	return article, nil
}

// ListArticles は全記事をID昇順で返します。記事がない場合は空スライスです。
func (u *articleUsecase) ListArticles(ctx context.Context) ([]entity.Article, error) {
	articles, err := u.articles.List(ctx)
	if err != nil {
		return nil, apperr.OrInternal(err, "failed to list articles")
	}
	if articles == nil {
		articles = []entity.Article{}
	}
	return articles, nil
}

// GetArticle はIDに一致する記事を返します。
func (u *articleUsecase) GetArticle(ctx context.Context, id uint) (*entity.Article, error) {
	article, err := u.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			return nil, apperr.NotFound(msgArticleNotFound)
		}
		return nil, apperr.OrInternal(err, "failed to find article")
	}
	return article, nil
}

// UpdateArticle はタイトルと本文をまとめて置き換えます。
func (u *articleUsecase) UpdateArticle(ctx context.Context, id uint, title, content string) error {
	if title == "" || content == "" {
		return apperr.Validation(msgTitleContentRequired)
	}

	rows, err := u.articles.Update(ctx, &entity.Article{ID: id, Title: title, Content: content})
	if err != nil {
		return apperr.OrInternal(err, "failed to update article")
	}
	if rows == 0 {
		return apperr.NotFound(msgArticleNotFound)
	}
	return nil
}

// DeleteArticle はIDに一致する記事を削除します。
func (u *articleUsecase) DeleteArticle(ctx context.Context, id uint) error {
	rows, err := u.articles.Delete(ctx, id)
	if err != nil {
		return apperr.OrInternal(err, "failed to delete article")
	}
	if rows == 0 {
		return apperr.NotFound(msgArticleNotFound)
	}
	return nil
}

// Package adapters はarticleフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"news_backend/internal/feature/article/domain/entity"
	"news_backend/internal/feature/article/usecase"
)

// articleRepository はArticleRepositoryインターフェースのGORM実装です。
type articleRepository struct {
	db *gorm.DB
}

var _ usecase.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository は指定されたDB接続でarticleRepositoryの新しいインスタンスを生成します。
func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db: db}
}

// Create は記事を追加し、採番されたIDをaに設定します。
func (r *articleRepository) Create(ctx context.Context, a *entity.Article) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// List はID昇順ですべての記事を返します。
func (r *articleRepository) List(ctx context.Context) ([]entity.Article, error) {
	var articles []entity.Article
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindByID はIDで記事を取得します。存在しない場合、usecase.ErrArticleNotFoundを返します。
func (r *articleRepository) FindByID(ctx context.Context, id uint) (*entity.Article, error) {
	var a entity.Article
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Update はタイトルと本文を上書きし、条件に一致した行数を返します。
func (r *articleRepository) Update(ctx context.Context, a *entity.Article) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Article{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{"title": a.Title, "content": a.Content})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Delete はIDで記事を削除し、削除した行数を返します。
func (r *articleRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Article{}, id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

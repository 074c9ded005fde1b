// Package dto はarticleフィーチャーのHTTPリクエスト・レスポンスの型を定義します。
package dto

import "news_backend/internal/feature/article/domain/entity"

// ArticleReq は POST /news と PUT /news/:id のリクエストボディです。
type ArticleReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ArticleRes は記事のレスポンス形式です。
type ArticleRes struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewArticleRes は記事をレスポンス形式に変換します。
func NewArticleRes(a entity.Article) ArticleRes {
	return ArticleRes{ID: a.ID, Title: a.Title, Content: a.Content}
}

// NewArticleListRes は記事一覧をレスポンス形式に変換します。結果がnilになることはありません。
func NewArticleListRes(articles []entity.Article) []ArticleRes {
	res := make([]ArticleRes, 0, len(articles))
	for _, a := range articles {
		res = append(res, NewArticleRes(a))
	}
	return res
}

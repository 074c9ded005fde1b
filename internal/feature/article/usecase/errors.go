package usecase

import "errors"

// ErrArticleNotFound はIDに一致する記事がない場合にArticleRepositoryが返すエラーです。
var ErrArticleNotFound = errors.New("article not found")

const (
	msgTitleContentRequired = "Title and content are required"
	msgArticleNotFound      = "News not found"
)

// Package entity はarticleフィーチャーのドメインエンティティを定義します。
package entity

// Article はニュース記事です。投稿者との紐付けはありません。
type Article struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:255;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
}

// TableName はテーブル名を news に固定します。
func (Article) TableName() string {
	return "news"
}

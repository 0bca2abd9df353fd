package model

import "time"

// Author is a denormalized snapshot of a user's display fields, taken when
// an article or comment is created. It deliberately goes stale if the user
// later edits bio or image; ownership checks use the immutable AuthorID on
// the parent record, never this snapshot.
type Author struct {
	Username  string `json:"username" gorm:"size:255;index"`
	Bio       string `json:"bio" gorm:"size:1024"`
	Image     string `json:"image" gorm:"size:1024"`
	Following bool   `json:"following"`
}

// TagList is an ordered list of tag names stored as a JSON column.
type TagList []string

// Article is a published post.
type Article struct {
	ID             uint      `json:"-" gorm:"primaryKey"`
	Slug           string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Title          string    `json:"title" gorm:"size:255;not null"`
	Description    string    `json:"description" gorm:"size:2048"`
	Body           string    `json:"body" gorm:"type:text"`
	TagList        TagList   `json:"tagList" gorm:"serializer:json;type:json"`
	Favorited      bool      `json:"favorited" gorm:"default:false"`
	FavoritesCount int       `json:"favoritesCount" gorm:"default:0"`
	AuthorID       uint      `json:"-" gorm:"index;not null"`
	Author         Author    `json:"author" gorm:"embedded;embeddedPrefix:author_"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

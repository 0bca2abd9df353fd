package model

import "time"

// Comment belongs to exactly one article. Only the original author may
// delete it.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ArticleID uint      `json:"-" gorm:"index;not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	AuthorID  uint      `json:"-" gorm:"index;not null"`
	Author    Author    `json:"author" gorm:"embedded;embeddedPrefix:author_"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package model

import "time"

// Tag is a standalone tag name. Article creation upserts its tag list here
// so the global tag listing reflects live content.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

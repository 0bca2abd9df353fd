package model

import "time"

// User represents a registered account. Users are never deleted.
type User struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Bio          string    `json:"bio" gorm:"size:1024"`
	Image        string    `json:"image" gorm:"size:1024"`
	Token        string    `json:"token" gorm:"size:1024"` // cached bearer token, re-issued on identity changes
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Snapshot copies the user's display fields into an author snapshot.
func (u *User) Snapshot() Author {
	return Author{
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}
}

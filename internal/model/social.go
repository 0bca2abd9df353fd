package model

import "time"

// Favorite joins a user to an article they favorited. The composite unique
// index makes the favorite toggle a conditional insert rather than a
// check-then-act sequence, so concurrent duplicate requests cannot produce
// two rows.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_favorite_user_article;not null"`
	ArticleID uint      `json:"articleId" gorm:"uniqueIndex:idx_favorite_user_article;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Following joins a follower to a followed user, with the same uniqueness
// guarantee as Favorite.
type Following struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"followerId" gorm:"uniqueIndex:idx_following_pair;not null"`
	FollowedID uint      `json:"followedId" gorm:"uniqueIndex:idx_following_pair;not null"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Profile is the public projection of a user as seen by a viewer. It is not
// a table; following is computed per request.
type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

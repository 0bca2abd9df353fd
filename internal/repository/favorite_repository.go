package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"conduit/internal/model"
)

// FavoriteRepository stores the (user, article) favorite join. Insert and
// Delete report whether a row actually changed so callers can keep the
// favorites counter in step without a read-modify-write race.
type FavoriteRepository interface {
	Insert(ctx context.Context, userID, articleID uint) (bool, error)
	Delete(ctx context.Context, userID, articleID uint) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository builds a GORM-backed repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Insert adds a favorite row unless one already exists for the pair. The
// unique index plus ON CONFLICT DO NOTHING makes repeated and concurrent
// calls idempotent.
func (r *favoriteRepository) Insert(ctx context.Context, userID, articleID uint) (bool, error) {
	fav := model.Favorite{UserID: userID, ArticleID: articleID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, articleID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

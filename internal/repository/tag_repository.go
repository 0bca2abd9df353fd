package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"conduit/internal/model"
)

// TagRepository defines tag persistence operations.
type TagRepository interface {
	Upsert(ctx context.Context, names []string) error
	List(ctx context.Context) ([]model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository builds a GORM-backed repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// Upsert inserts any tag names not already present.
func (r *tagRepository) Upsert(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, model.Tag{Name: name})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&tags).Error
}

func (r *tagRepository) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

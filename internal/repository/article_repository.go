package repository

import (
	"context"

	"gorm.io/gorm"

	"conduit/internal/model"
)

// ArticleFilter narrows and pages article listings. Zero values mean
// "not filtered"; Limit and Skip are applied as given.
type ArticleFilter struct {
	Author string
	Tag    string
	Limit  int
	Skip   int
}

// ArticleRepository defines article persistence operations.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id uint) error
	FindBySlug(ctx context.Context, slug string) (*model.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]model.Article, error)
	ListByAuthorIDs(ctx context.Context, authorIDs []uint, limit, skip int) ([]model.Article, error)
	IncrementFavorites(ctx context.Context, id uint) error
	DecrementFavorites(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository builds a GORM-backed repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Article{}, id).Error
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// List returns articles newest-first, optionally filtered by author
// username (snapshot) and tag membership.
func (r *articleRepository) List(ctx context.Context, filter ArticleFilter) ([]model.Article, error) {
	q := r.db.WithContext(ctx).Model(&model.Article{})
	if filter.Author != "" {
		q = q.Where("author_username = ?", filter.Author)
	}
	if filter.Tag != "" {
		q = q.Where("JSON_CONTAINS(tag_list, JSON_QUOTE(?))", filter.Tag)
	}

	var articles []model.Article
	err := q.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Skip).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint, limit, skip int) ([]model.Article, error) {
	if len(authorIDs) == 0 {
		return []model.Article{}, nil
	}
	var articles []model.Article
	err := r.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// IncrementFavorites bumps the counter atomically in SQL; favorited is true
// whenever the counter is positive.
func (r *articleRepository) IncrementFavorites(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"favorites_count": gorm.Expr("favorites_count + 1"),
			"favorited":       true,
		}).Error
}

// DecrementFavorites floors the counter at zero, then recomputes favorited
// from the stored counter.
func (r *articleRepository) DecrementFavorites(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id)
	if err := tx.Update("favorites_count", gorm.Expr("GREATEST(favorites_count - 1, 0)")).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		Update("favorited", gorm.Expr("favorites_count > 0")).Error
}

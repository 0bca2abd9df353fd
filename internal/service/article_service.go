package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"conduit/internal/auth"
	"conduit/internal/cache"
	apperrors "conduit/internal/errors"
	"conduit/internal/model"
	"conduit/internal/repository"
)

const (
	defaultPageLimit = 20
	articleCacheTTL  = 5 * time.Minute
)

// ArticleInput carries the fields of an article creation request.
type ArticleInput struct {
	Title       string
	Description string
	Body        string
	TagList     []string
}

// ArticlePatch carries optional article updates; nil fields are left
// untouched.
type ArticlePatch struct {
	Title       *string
	Description *string
	Body        *string
	TagList     *[]string
}

// ArticleService handles article CRUD and the favorite toggle, and owns
// authorship enforcement for mutations.
type ArticleService interface {
	List(ctx context.Context, filter repository.ArticleFilter) ([]model.Article, int, error)
	Feed(ctx context.Context, claims *auth.Claims, limit, skip int) ([]model.Article, int, error)
	Get(ctx context.Context, slug string) (*model.Article, error)
	Create(ctx context.Context, claims *auth.Claims, input ArticleInput) (*model.Article, error)
	Update(ctx context.Context, claims *auth.Claims, slug string, patch ArticlePatch) (*model.Article, error)
	Delete(ctx context.Context, claims *auth.Claims, slug string) error
	Favorite(ctx context.Context, claims *auth.Claims, slug string) (*model.Article, error)
	Unfavorite(ctx context.Context, claims *auth.Claims, slug string) (*model.Article, error)
}

type articleService struct {
	articles  repository.ArticleRepository
	users     repository.UserRepository
	favorites repository.FavoriteRepository
	follows   repository.FollowRepository
	tags      repository.TagRepository
	cache     *cache.Client
}

// NewArticleService creates a new article service.
func NewArticleService(
	articles repository.ArticleRepository,
	users repository.UserRepository,
	favorites repository.FavoriteRepository,
	follows repository.FollowRepository,
	tags repository.TagRepository,
	cache *cache.Client,
) ArticleService {
	return &articleService{
		articles:  articles,
		users:     users,
		favorites: favorites,
		follows:   follows,
		tags:      tags,
		cache:     cache,
	}
}

func articleCacheKey(slug string) string {
	return "article:" + slug
}

func normalizePage(limit, skip int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}

// findBySlug reads straight from the store, bypassing the cache. Mutating
// operations use it so they never act on a stale copy.
func (s *articleService) findBySlug(ctx context.Context, slug string) (*model.Article, error) {
	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return article, nil
}

// List returns a page of articles, newest-first. The returned count is the
// size of the page, not a global total.
func (s *articleService) List(ctx context.Context, filter repository.ArticleFilter) ([]model.Article, int, error) {
	filter.Limit, filter.Skip = normalizePage(filter.Limit, filter.Skip)
	articles, err := s.articles.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	return articles, len(articles), nil
}

// Feed returns articles authored by users the caller follows.
func (s *articleService) Feed(ctx context.Context, claims *auth.Claims, limit, skip int) ([]model.Article, int, error) {
	user, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return nil, 0, err
	}

	followedIDs, err := s.follows.FollowedIDs(ctx, user.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("resolve followed users: %w", err)
	}

	limit, skip = normalizePage(limit, skip)
	articles, err := s.articles.ListByAuthorIDs(ctx, followedIDs, limit, skip)
	if err != nil {
		return nil, 0, fmt.Errorf("list feed: %w", err)
	}
	return articles, len(articles), nil
}

// Get retrieves an article by slug, read through the cache.
func (s *articleService) Get(ctx context.Context, slug string) (*model.Article, error) {
	if data, _ := s.cache.Get(ctx, articleCacheKey(slug)); data != nil {
		var cached model.Article
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	article, err := s.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(article); err == nil {
		_ = s.cache.Set(ctx, articleCacheKey(slug), payload, articleCacheTTL)
	}
	return article, nil
}

// Create persists a new article authored by the caller, with the author
// snapshot taken at creation time and the slug derived from the title.
func (s *articleService) Create(ctx context.Context, claims *auth.Claims, input ArticleInput) (*model.Article, error) {
	user, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, apperrors.ErrBadRequest
	}

	article := &model.Article{
		Slug:           Slugify(input.Title),
		Title:          input.Title,
		Description:    input.Description,
		Body:           input.Body,
		TagList:        input.TagList,
		Favorited:      false,
		FavoritesCount: 0,
		AuthorID:       user.ID,
		Author:         user.Snapshot(),
	}
	if err := s.articles.Create(ctx, article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create article: %w", err)
	}

	if err := s.tags.Upsert(ctx, input.TagList); err != nil {
		return nil, fmt.Errorf("upsert tags: %w", err)
	}
	_ = s.cache.Delete(ctx, tagsCacheKey)

	return article, nil
}

// Update applies non-nil patch fields to the caller's own article. The slug
// is regenerated only when the title actually changes.
func (s *articleService) Update(ctx context.Context, claims *auth.Claims, slug string, patch ArticlePatch) (*model.Article, error) {
	user, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return nil, err
	}

	article, err := s.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != user.ID {
		return nil, apperrors.ErrForbidden
	}

	if patch.Title != nil && *patch.Title != article.Title {
		article.Title = *patch.Title
		article.Slug = Slugify(*patch.Title)
	}
	if patch.Description != nil {
		article.Description = *patch.Description
	}
	if patch.Body != nil {
		article.Body = *patch.Body
	}
	if patch.TagList != nil {
		article.TagList = *patch.TagList
		if err := s.tags.Upsert(ctx, *patch.TagList); err != nil {
			return nil, fmt.Errorf("upsert tags: %w", err)
		}
		_ = s.cache.Delete(ctx, tagsCacheKey)
	}

	if err := s.articles.Update(ctx, article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	_ = s.cache.Delete(ctx, articleCacheKey(slug), articleCacheKey(article.Slug))
	return article, nil
}

// Delete removes the caller's own article.
func (s *articleService) Delete(ctx context.Context, claims *auth.Claims, slug string) error {
	user, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return err
	}

	article, err := s.findBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if article.AuthorID != user.ID {
		return apperrors.ErrForbidden
	}

	if err := s.articles.Delete(ctx, article.ID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	_ = s.cache.Delete(ctx, articleCacheKey(slug))
	return nil
}

// Favorite records the caller's favorite for an article. Repeated calls are
// no-ops: the counter moves only when the join row was actually inserted.
func (s *articleService) Favorite(ctx context.Context, claims *auth.Claims, slug string) (*model.Article, error) {
	user, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return nil, err
	}

	article, err := s.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	inserted, err := s.favorites.Insert(ctx, user.ID, article.ID)
	if err != nil {
		return nil, fmt.Errorf("insert favorite: %w", err)
	}
	if !inserted {
		return article, nil
	}

	if err := s.articles.IncrementFavorites(ctx, article.ID); err != nil {
		return nil, fmt.Errorf("increment favorites: %w", err)
	}
	_ = s.cache.Delete(ctx, articleCacheKey(slug))
	return s.findBySlug(ctx, slug)
}

// Unfavorite removes the caller's favorite. The counter only decrements
// (floored at zero) when a row was actually deleted.
func (s *articleService) Unfavorite(ctx context.Context, claims *auth.Claims, slug string) (*model.Article, error) {
	user, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return nil, err
	}

	article, err := s.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	deleted, err := s.favorites.Delete(ctx, user.ID, article.ID)
	if err != nil {
		return nil, fmt.Errorf("delete favorite: %w", err)
	}
	if !deleted {
		return article, nil
	}

	if err := s.articles.DecrementFavorites(ctx, article.ID); err != nil {
		return nil, fmt.Errorf("decrement favorites: %w", err)
	}
	_ = s.cache.Delete(ctx, articleCacheKey(slug))
	return s.findBySlug(ctx, slug)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"conduit/internal/auth"
	apperrors "conduit/internal/errors"
	"conduit/internal/model"
	"conduit/internal/repository"
)

type articleMocks struct {
	articles  *MockArticleRepository
	users     *MockUserRepository
	favorites *MockFavoriteRepository
	follows   *MockFollowRepository
	tags      *MockTagRepository
}

func newArticleService() (ArticleService, articleMocks) {
	m := articleMocks{
		articles:  new(MockArticleRepository),
		users:     new(MockUserRepository),
		favorites: new(MockFavoriteRepository),
		follows:   new(MockFollowRepository),
		tags:      new(MockTagRepository),
	}
	svc := NewArticleService(m.articles, m.users, m.favorites, m.follows, m.tags, nil)
	return svc, m
}

func bobClaims() *auth.Claims {
	return &auth.Claims{UserID: 7, Email: "bob@x.com", Username: "bob"}
}

func bobUser() *model.User {
	return &model.User{ID: 7, Username: "bob", Email: "bob@x.com", Bio: "builder", Image: "img"}
}

func TestArticleService_Create(t *testing.T) {
	svc, m := newArticleService()
	m.users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
	m.articles.On("Create", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)
	m.tags.On("Upsert", mock.Anything, []string{"dragons"}).Return(nil)

	article, err := svc.Create(context.Background(), bobClaims(), ArticleInput{
		Title:       "New Title",
		Description: "desc",
		Body:        "body",
		TagList:     []string{"dragons"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "new-title", article.Slug)
	assert.Equal(t, uint(7), article.AuthorID)
	assert.Equal(t, "bob", article.Author.Username)
	assert.Equal(t, "builder", article.Author.Bio)
	assert.False(t, article.Favorited)
	assert.Zero(t, article.FavoritesCount)
	m.articles.AssertExpectations(t)
	m.tags.AssertExpectations(t)
}

func TestArticleService_CreateAnonymous(t *testing.T) {
	svc, _ := newArticleService()
	_, err := svc.Create(context.Background(), nil, ArticleInput{Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestArticleService_CreateDuplicateSlug(t *testing.T) {
	svc, m := newArticleService()
	m.users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
	m.articles.On("Create", mock.Anything, mock.AnythingOfType("*model.Article")).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Create(context.Background(), bobClaims(), ArticleInput{Title: "New Title"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateSlug)
}

func TestArticleService_UpdateOwnership(t *testing.T) {
	svc, m := newArticleService()
	m.users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
	m.articles.On("FindBySlug", mock.Anything, "new-title").Return(&model.Article{
		ID: 1, Slug: "new-title", Title: "New Title", AuthorID: 99,
	}, nil)

	_, err := svc.Update(context.Background(), bobClaims(), "new-title", ArticlePatch{})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	m.articles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestArticleService_UpdateSlugRegeneration(t *testing.T) {
	sameTitle := "New Title"
	changedTitle := "Other Title"

	tests := []struct {
		name     string
		patch    ArticlePatch
		wantSlug string
	}{
		{name: "unchanged title keeps slug", patch: ArticlePatch{Title: &sameTitle}, wantSlug: "new-title"},
		{name: "changed title regenerates slug", patch: ArticlePatch{Title: &changedTitle}, wantSlug: "other-title"},
		{name: "no title patch keeps slug", patch: ArticlePatch{}, wantSlug: "new-title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newArticleService()
			m.users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
			m.articles.On("FindBySlug", mock.Anything, "new-title").Return(&model.Article{
				ID: 1, Slug: "new-title", Title: "New Title", AuthorID: 7,
			}, nil)
			m.articles.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)

			article, err := svc.Update(context.Background(), bobClaims(), "new-title", tt.patch)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantSlug, article.Slug)
		})
	}
}

func TestArticleService_DeleteOwnership(t *testing.T) {
	svc, m := newArticleService()
	m.users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
	m.articles.On("FindBySlug", mock.Anything, "someone-elses").Return(&model.Article{
		ID: 3, Slug: "someone-elses", AuthorID: 42,
	}, nil)

	err := svc.Delete(context.Background(), bobClaims(), "someone-elses")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	m.articles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestArticleService_FavoriteIdempotent(t *testing.T) {
	svc, m := newArticleService()
	m.users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
	m.articles.On("FindBySlug", mock.Anything, "new-title").Return(&model.Article{
		ID: 1, Slug: "new-title", AuthorID: 42, Favorited: true, FavoritesCount: 1,
	}, nil)
	// Row already exists: no counter movement.
	m.favorites.On("Insert", mock.Anything, uint(7), uint(1)).Return(false, nil)

	article, err := svc.Favorite(context.Background(), bobClaims(), "new-title")
	assert.NoError(t, err)
	assert.Equal(t, 1, article.FavoritesCount)
	m.articles.AssertNotCalled(t, "IncrementFavorites", mock.Anything, mock.Anything)
}

func TestArticleService_FavoriteFirstTime(t *testing.T) {
	svc, m := newArticleService()
	m.users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
	m.articles.On("FindBySlug", mock.Anything, "new-title").Return(&model.Article{
		ID: 1, Slug: "new-title", AuthorID: 42,
	}, nil).Once()
	m.favorites.On("Insert", mock.Anything, uint(7), uint(1)).Return(true, nil)
	m.articles.On("IncrementFavorites", mock.Anything, uint(1)).Return(nil)
	m.articles.On("FindBySlug", mock.Anything, "new-title").Return(&model.Article{
		ID: 1, Slug: "new-title", AuthorID: 42, Favorited: true, FavoritesCount: 1,
	}, nil)

	article, err := svc.Favorite(context.Background(), bobClaims(), "new-title")
	assert.NoError(t, err)
	assert.True(t, article.Favorited)
	assert.Equal(t, 1, article.FavoritesCount)
	m.articles.AssertExpectations(t)
}

func TestArticleService_UnfavoriteNoop(t *testing.T) {
	svc, m := newArticleService()
	m.users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
	m.articles.On("FindBySlug", mock.Anything, "new-title").Return(&model.Article{
		ID: 1, Slug: "new-title", AuthorID: 42, Favorited: false, FavoritesCount: 0,
	}, nil)
	// No favorite row to delete: counter stays put.
	m.favorites.On("Delete", mock.Anything, uint(7), uint(1)).Return(false, nil)

	article, err := svc.Unfavorite(context.Background(), bobClaims(), "new-title")
	assert.NoError(t, err)
	assert.False(t, article.Favorited)
	assert.Zero(t, article.FavoritesCount)
	m.articles.AssertNotCalled(t, "DecrementFavorites", mock.Anything, mock.Anything)
}

func TestArticleService_FeedAnonymous(t *testing.T) {
	svc, _ := newArticleService()
	_, _, err := svc.Feed(context.Background(), nil, 0, 0)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestArticleService_Feed(t *testing.T) {
	svc, m := newArticleService()
	m.users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
	m.follows.On("FollowedIDs", mock.Anything, uint(7)).Return([]uint{3, 5}, nil)
	m.articles.On("ListByAuthorIDs", mock.Anything, []uint{3, 5}, 20, 0).Return([]model.Article{
		{ID: 10, Slug: "a"}, {ID: 11, Slug: "b"},
	}, nil)

	articles, count, err := svc.Feed(context.Background(), bobClaims(), 0, 0)
	assert.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.Equal(t, 2, count)
}

func TestArticleService_ListDefaults(t *testing.T) {
	svc, m := newArticleService()
	m.articles.On("List", mock.Anything, repository.ArticleFilter{Author: "bob", Limit: 20, Skip: 0}).
		Return([]model.Article{{ID: 1}}, nil)

	articles, count, err := svc.List(context.Background(), repository.ArticleFilter{Author: "bob"})
	assert.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, 1, count)
	m.articles.AssertExpectations(t)
}

func TestArticleService_GetNotFound(t *testing.T) {
	svc, m := newArticleService()
	m.articles.On("FindBySlug", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrArticleNotFound)
}

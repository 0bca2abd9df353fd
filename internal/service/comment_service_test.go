package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "conduit/internal/errors"
	"conduit/internal/model"
)

func TestCommentService_Create(t *testing.T) {
	comments := new(MockCommentRepository)
	articles := new(MockArticleRepository)
	users := new(MockUserRepository)
	svc := NewCommentService(comments, articles, users)

	users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
	articles.On("FindBySlug", mock.Anything, "new-title").Return(&model.Article{ID: 1, Slug: "new-title"}, nil)
	comments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

	comment, err := svc.Create(context.Background(), bobClaims(), "new-title", "nice one")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), comment.ArticleID)
	assert.Equal(t, uint(7), comment.AuthorID)
	assert.Equal(t, "bob", comment.Author.Username)
	comments.AssertExpectations(t)
}

func TestCommentService_CreateValidation(t *testing.T) {
	svc := NewCommentService(new(MockCommentRepository), new(MockArticleRepository), new(MockUserRepository))

	_, err := svc.Create(context.Background(), nil, "new-title", "body")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Create(context.Background(), bobClaims(), "new-title", "")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCommentService_ListUnknownArticle(t *testing.T) {
	comments := new(MockCommentRepository)
	articles := new(MockArticleRepository)
	svc := NewCommentService(comments, articles, new(MockUserRepository))

	articles.On("FindBySlug", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.List(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrArticleNotFound)
}

func TestCommentService_DeleteOwnership(t *testing.T) {
	tests := []struct {
		name          string
		commentAuthor uint
		expectedError error
	}{
		{name: "author may delete", commentAuthor: 7, expectedError: nil},
		{name: "non-author is forbidden", commentAuthor: 42, expectedError: apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := new(MockCommentRepository)
			articles := new(MockArticleRepository)
			users := new(MockUserRepository)
			svc := NewCommentService(comments, articles, users)

			users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
			articles.On("FindBySlug", mock.Anything, "new-title").Return(&model.Article{ID: 1, Slug: "new-title"}, nil)
			comments.On("FindByID", mock.Anything, uint(5)).Return(&model.Comment{
				ID: 5, ArticleID: 1, AuthorID: tt.commentAuthor,
			}, nil)
			if tt.expectedError == nil {
				comments.On("Delete", mock.Anything, uint(5)).Return(nil)
			}

			err := svc.Delete(context.Background(), bobClaims(), "new-title", 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				comments.AssertExpectations(t)
			}
		})
	}
}

func TestCommentService_DeleteMissingComment(t *testing.T) {
	comments := new(MockCommentRepository)
	articles := new(MockArticleRepository)
	users := new(MockUserRepository)
	svc := NewCommentService(comments, articles, users)

	users.On("FindByID", mock.Anything, uint(7)).Return(bobUser(), nil)
	articles.On("FindBySlug", mock.Anything, "new-title").Return(&model.Article{ID: 1}, nil)
	comments.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), bobClaims(), "new-title", 9)
	assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
}

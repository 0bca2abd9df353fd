package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"conduit/internal/auth"
	apperrors "conduit/internal/errors"
	"conduit/internal/model"
	"conduit/internal/repository"
)

// CommentService handles comments scoped to an article, and owns
// authorship enforcement for deletion.
type CommentService interface {
	List(ctx context.Context, slug string) ([]model.Comment, error)
	Create(ctx context.Context, claims *auth.Claims, slug, body string) (*model.Comment, error)
	Delete(ctx context.Context, claims *auth.Claims, slug string, commentID uint) error
}

type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	users    repository.UserRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(
	comments repository.CommentRepository,
	articles repository.ArticleRepository,
	users repository.UserRepository,
) CommentService {
	return &commentService{
		comments: comments,
		articles: articles,
		users:    users,
	}
}

func (s *commentService) articleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return article, nil
}

// List returns an article's comments, newest-first.
func (s *commentService) List(ctx context.Context, slug string) ([]model.Comment, error) {
	article, err := s.articleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByArticle(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Create adds a comment to an article, stamped with the caller's author
// snapshot.
func (s *commentService) Create(ctx context.Context, claims *auth.Claims, slug, body string) (*model.Comment, error) {
	if claims == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if body == "" {
		return nil, apperrors.ErrBadRequest
	}

	user, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return nil, err
	}
	article, err := s.articleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ArticleID: article.ID,
		Body:      body,
		AuthorID:  user.ID,
		Author:    user.Snapshot(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// Delete removes a comment; only the original author may do so.
func (s *commentService) Delete(ctx context.Context, claims *auth.Claims, slug string, commentID uint) error {
	user, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return err
	}
	if _, err := s.articleBySlug(ctx, slug); err != nil {
		return err
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("find comment: %w", err)
	}
	if comment.AuthorID != user.ID {
		return apperrors.ErrForbidden
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

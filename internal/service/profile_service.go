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

// ProfileService projects user profiles and mutates the follow graph.
type ProfileService interface {
	Get(ctx context.Context, username string, viewer *auth.Claims) (*model.Profile, error)
	Follow(ctx context.Context, username string, claims *auth.Claims) (*model.Profile, error)
	Unfollow(ctx context.Context, username string, claims *auth.Claims) (*model.Profile, error)
}

type profileService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(users repository.UserRepository, follows repository.FollowRepository) ProfileService {
	return &profileService{
		users:   users,
		follows: follows,
	}
}

func (s *profileService) userByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func profileOf(user *model.User, following bool) *model.Profile {
	return &model.Profile{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: following,
	}
}

// Get projects a user's profile. The following flag is computed against the
// viewing identity when one is presented; anonymous viewers see false.
func (s *profileService) Get(ctx context.Context, username string, viewer *auth.Claims) (*model.Profile, error) {
	if username == "" {
		return nil, apperrors.ErrBadRequest
	}
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	following := false
	if viewer != nil {
		following, err = s.follows.Exists(ctx, viewer.UserID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("check following: %w", err)
		}
	}
	return profileOf(user, following), nil
}

// Follow records the caller following the target. The insert is idempotent;
// following twice leaves a single row.
func (s *profileService) Follow(ctx context.Context, username string, claims *auth.Claims) (*model.Profile, error) {
	if claims == nil {
		return nil, apperrors.ErrBadRequest
	}
	followed, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	follower, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return nil, err
	}

	if _, err := s.follows.Insert(ctx, follower.ID, followed.ID); err != nil {
		return nil, fmt.Errorf("insert following: %w", err)
	}
	return profileOf(followed, true), nil
}

// Unfollow removes the following row if present; unfollowing someone never
// followed is a no-op that still reports following=false.
func (s *profileService) Unfollow(ctx context.Context, username string, claims *auth.Claims) (*model.Profile, error) {
	if claims == nil {
		return nil, apperrors.ErrBadRequest
	}
	followed, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	follower, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return nil, err
	}

	if _, err := s.follows.Delete(ctx, follower.ID, followed.ID); err != nil {
		return nil, fmt.Errorf("delete following: %w", err)
	}
	return profileOf(followed, false), nil
}

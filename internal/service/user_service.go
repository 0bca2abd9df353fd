package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"conduit/internal/auth"
	apperrors "conduit/internal/errors"
	"conduit/internal/model"
	"conduit/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Bio      string
	Image    string
}

// UserPatch carries optional profile updates; nil fields are left untouched.
type UserPatch struct {
	Username *string
	Email    *string
	Bio      *string
	Image    *string
}

// UserService resolves identities and manages user records.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	Current(ctx context.Context, claims *auth.Claims) (*model.User, error)
	Update(ctx context.Context, claims *auth.Claims, patch UserPatch) (*model.User, error)
}

type userService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, jwtService *auth.JWTService) UserService {
	return &userService{
		users:      users,
		jwtService: jwtService,
	}
}

// resolveUser maps bearer claims to the stored user by immutable id.
// Content ownership and the follow graph key on this id, so username or
// email edits never detach a user from their records.
func resolveUser(ctx context.Context, users repository.UserRepository, claims *auth.Claims) (*model.User, error) {
	if claims == nil {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Register creates a new user with a hashed password and an issued token.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.ErrBadRequest
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Bio:          input.Bio,
		Image:        input.Image,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueToken(ctx, user)
}

// Login authenticates by email and password and ensures the user carries a
// cached token.
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrBadRequest
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Token == "" {
		return s.issueToken(ctx, user)
	}
	return user, nil
}

// Current resolves the bearer claims to the stored user.
func (s *userService) Current(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	if claims == nil {
		return nil, apperrors.ErrBadRequest
	}
	user, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return nil, err
	}
	if user.Token == "" {
		return s.issueToken(ctx, user)
	}
	return user, nil
}

// Update merges non-nil patch fields onto the current user and re-issues
// the token, since username and email are part of the identity claim.
func (s *userService) Update(ctx context.Context, claims *auth.Claims, patch UserPatch) (*model.User, error) {
	user, err := resolveUser(ctx, s.users, claims)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Image != nil {
		user.Image = *patch.Image
	}

	return s.issueToken(ctx, user)
}

func (s *userService) issueToken(ctx context.Context, user *model.User) (*model.User, error) {
	token, err := s.jwtService.Generate(user.ID, user.Email, user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	user.Token = token
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUser
		}
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
)

// UserService defines the interface for user-related operations
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userStore UserStore) UserService {
	return &userServiceImpl{userStore: userStore}
}

// CreateUser registers a new tracker user. Username and email must be unique;
// the store reports violations as duplicate errors.
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email address", apperrors.ErrValidationFailed)
	}

	user := &models.User{
		Username: username,
		Email:    email,
	}

	if _, err := s.userStore.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	return s.userStore.GetUserByID(ctx, id)
}

// GetAllUsers retrieves all users
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userStore.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// DeleteUser deletes a user by ID
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	return s.userStore.DeleteUser(ctx, id)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
)

func TestCreateUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	user, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username: "deniz",
		Email:    "deniz@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "deniz", user.Username)
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username: " ",
		Email:    "deniz@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username: "deniz",
		Email:    "not-an-email",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateUserDuplicates(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username: "deniz",
		Email:    "deniz@example.com",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username: "deniz",
		Email:    "other@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
	assert.ErrorIs(t, apperrors.Kind(err), apperrors.ErrDuplicate)

	_, err = svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username: "other",
		Email:    "deniz@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailExists)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	err := svc.DeleteUser(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

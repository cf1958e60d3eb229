package unit_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogly/internal/models"
	"blogly/internal/repositories"
	"blogly/internal/services"
	"blogly/internal/tests/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	mockRepo := &mocks.UserRepositoryMock{
		CreateFunc: func(ctx context.Context, u *models.User) error {
			u.ID = 42
			return nil
		},
	}
	service := services.NewUserService(mockRepo)

	user, err := service.Create(context.Background(), " Ada ", "Lovelace", "https://example.com/ada.png")
	require.NoError(t, err)
	assert.Equal(t, uint(42), user.ID)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "https://example.com/ada.png", user.ImageURL)
}

func TestUserService_Create_BlankImageUsesDefault(t *testing.T) {
	var stored *models.User
	mockRepo := &mocks.UserRepositoryMock{
		CreateFunc: func(ctx context.Context, u *models.User) error {
			stored = u
			return nil
		},
	}
	service := services.NewUserService(mockRepo)

	_, err := service.Create(context.Background(), "Ada", "Lovelace", "   ")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.DefaultImageURL, stored.ImageURL)
}

func TestUserService_Create_MissingNames(t *testing.T) {
	mockRepo := &mocks.UserRepositoryMock{
		CreateFunc: func(ctx context.Context, u *models.User) error {
			t.Fatal("repository must not be called")
			return nil
		},
	}
	service := services.NewUserService(mockRepo)
	ctx := context.Background()

	_, err := service.Create(ctx, "", "Lovelace", "")
	assert.EqualError(t, err, "first name is required")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = service.Create(ctx, "Ada", " \t", "")
	assert.EqualError(t, err, "last name is required")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestUserService_Create_RepositoryError(t *testing.T) {
	mockRepo := &mocks.UserRepositoryMock{
		CreateFunc: func(ctx context.Context, u *models.User) error {
			return errors.New("database error")
		},
	}
	service := services.NewUserService(mockRepo)

	user, err := service.Create(context.Background(), "Ada", "Lovelace", "")
	assert.Nil(t, user)
	assert.EqualError(t, err, "service: create user: database error")
}

func TestUserService_Get_NotFound(t *testing.T) {
	mockRepo := &mocks.UserRepositoryMock{
		FindByIDFunc: func(ctx context.Context, id uint) (*models.User, error) {
			return nil, repositories.ErrNotFound
		},
	}
	service := services.NewUserService(mockRepo)

	_, err := service.Get(context.Background(), 9)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserService_List_Delegates(t *testing.T) {
	mockRepo := &mocks.UserRepositoryMock{
		ListFunc: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: 1, FirstName: "A"}, {ID: 2, FirstName: "B"}}, nil
		},
	}
	service := services.NewUserService(mockRepo)

	users, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_Update_PassesIDAndDefaults(t *testing.T) {
	mockRepo := &mocks.UserRepositoryMock{
		UpdateFunc: func(ctx context.Context, u *models.User) error {
			assert.Equal(t, uint(7), u.ID)
			assert.Equal(t, "Grace", u.FirstName)
			assert.Equal(t, "Hopper", u.LastName)
			assert.Equal(t, models.DefaultImageURL, u.ImageURL)
			return nil
		},
	}
	service := services.NewUserService(mockRepo)

	user, err := service.Update(context.Background(), 7, "Grace", "Hopper", "")
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
}

func TestUserService_Update_NotFound(t *testing.T) {
	mockRepo := &mocks.UserRepositoryMock{
		UpdateFunc: func(ctx context.Context, u *models.User) error {
			return repositories.ErrNotFound
		},
	}
	service := services.NewUserService(mockRepo)

	_, err := service.Update(context.Background(), 7, "Grace", "Hopper", "")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserService_Delete_Error(t *testing.T) {
	mockRepo := &mocks.UserRepositoryMock{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return assert.AnError
		},
	}
	service := services.NewUserService(mockRepo)

	err := service.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, assert.AnError)
}

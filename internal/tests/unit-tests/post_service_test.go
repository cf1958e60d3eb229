package unit_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogly/internal/models"
	"blogly/internal/repositories"
	"blogly/internal/services"
	"blogly/internal/tests/mocks"
)

func TestPostService_Create_Success(t *testing.T) {
	mockRepo := &mocks.PostRepositoryMock{
		CreateFunc: func(ctx context.Context, p *models.Post) error {
			assert.Equal(t, uint(5), p.UserID)
			p.ID = 11
			return nil
		},
	}
	service := services.NewPostService(mockRepo)

	post, err := service.Create(context.Background(), 5, " Hello ", "World")
	require.NoError(t, err)
	assert.Equal(t, uint(11), post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Content)
}

func TestPostService_Create_Validation(t *testing.T) {
	service := services.NewPostService(&mocks.PostRepositoryMock{})
	ctx := context.Background()

	_, err := service.Create(ctx, 5, "", "World")
	assert.EqualError(t, err, "title is required")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = service.Create(ctx, 5, "Hello", "\n")
	assert.EqualError(t, err, "content is required")
}

func TestPostService_Create_UnknownUser(t *testing.T) {
	mockRepo := &mocks.PostRepositoryMock{
		CreateFunc: func(ctx context.Context, p *models.Post) error {
			return repositories.ErrNotFound
		},
	}
	service := services.NewPostService(mockRepo)

	post, err := service.Create(context.Background(), 99, "Hello", "World")
	assert.Nil(t, post)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPostService_Get_Delegates(t *testing.T) {
	mockRepo := &mocks.PostRepositoryMock{
		FindByIDFunc: func(ctx context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, Title: "T"}, nil
		},
	}
	service := services.NewPostService(mockRepo)

	post, err := service.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), post.ID)
}

func TestPostService_ListByUser_Error(t *testing.T) {
	mockRepo := &mocks.PostRepositoryMock{
		ListByUserFunc: func(ctx context.Context, userID uint) ([]models.Post, error) {
			return nil, assert.AnError
		},
	}
	service := services.NewPostService(mockRepo)

	posts, err := service.ListByUser(context.Background(), 1)
	assert.Nil(t, posts)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPostService_Update_Success(t *testing.T) {
	mockRepo := &mocks.PostRepositoryMock{
		UpdateFunc: func(ctx context.Context, p *models.Post) error {
			assert.Equal(t, uint(4), p.ID)
			p.UserID = 2
			return nil
		},
	}
	service := services.NewPostService(mockRepo)

	post, err := service.Update(context.Background(), 4, "New", "Body")
	require.NoError(t, err)
	assert.Equal(t, "New", post.Title)
	assert.Equal(t, uint(2), post.UserID)
}

func TestPostService_Delete_ReturnsOwner(t *testing.T) {
	mockRepo := &mocks.PostRepositoryMock{
		DeleteFunc: func(ctx context.Context, id uint) (uint, error) {
			return 7, nil
		},
	}
	service := services.NewPostService(mockRepo)

	owner, err := service.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, uint(7), owner)
}

func TestPostService_Delete_NotFound(t *testing.T) {
	mockRepo := &mocks.PostRepositoryMock{
		DeleteFunc: func(ctx context.Context, id uint) (uint, error) {
			return 0, repositories.ErrNotFound
		},
	}
	service := services.NewPostService(mockRepo)

	_, err := service.Delete(context.Background(), 4)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

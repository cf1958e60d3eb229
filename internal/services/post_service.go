package services

import (
	"context"
	"fmt"

	"blogly/internal/models"
	"blogly/internal/repositories"
)

type PostService interface {
	Create(ctx context.Context, userID uint, title, content string) (*models.Post, error)
	Get(ctx context.Context, id uint) (*models.Post, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Post, error)
	Update(ctx context.Context, id uint, title, content string) (*models.Post, error)
	// Delete returns the id of the user that owned the deleted post.
	Delete(ctx context.Context, id uint) (uint, error)
}

type postService struct {
	posts repositories.PostRepository
}

func NewPostService(posts repositories.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) Create(ctx context.Context, userID uint, title, content string) (*models.Post, error) {
	p, err := buildPost(title, content)
	if err != nil {
		return nil, err
	}
	p.UserID = userID
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("service: create post for user %d: %w", userID, err)
	}
	return p, nil
}

func (s *postService) Get(ctx context.Context, id uint) (*models.Post, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: get post %d: %w", id, err)
	}
	return p, nil
}

func (s *postService) ListByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: list posts of user %d: %w", userID, err)
	}
	return posts, nil
}

func (s *postService) Update(ctx context.Context, id uint, title, content string) (*models.Post, error) {
	p, err := buildPost(title, content)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("service: update post %d: %w", id, err)
	}
	return p, nil
}

func (s *postService) Delete(ctx context.Context, id uint) (uint, error) {
	ownerID, err := s.posts.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("service: delete post %d: %w", id, err)
	}
	return ownerID, nil
}

func buildPost(title, content string) (*models.Post, error) {
	t, err := required(title, "title")
	if err != nil {
		return nil, err
	}
	c, err := required(content, "content")
	if err != nil {
		return nil, err
	}
	return &models.Post{Title: t, Content: c}, nil
}

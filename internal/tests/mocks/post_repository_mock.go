package mocks

import (
	"context"

	"blogly/internal/models"
)

type PostRepositoryMock struct {
	CreateFunc     func(ctx context.Context, p *models.Post) error
	FindByIDFunc   func(ctx context.Context, id uint) (*models.Post, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]models.Post, error)
	UpdateFunc     func(ctx context.Context, p *models.Post) error
	DeleteFunc     func(ctx context.Context, id uint) (uint, error)
}

func (m *PostRepositoryMock) Create(ctx context.Context, p *models.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *PostRepositoryMock) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *PostRepositoryMock) ListByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []models.Post{}, nil
}

func (m *PostRepositoryMock) Update(ctx context.Context, p *models.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *PostRepositoryMock) Delete(ctx context.Context, id uint) (uint, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, nil
}

package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blogly/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, p *models.Post) error
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	// Delete removes the post and returns the id of the user that owned it.
	Delete(ctx context.Context, id uint) (uint, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, p *models.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.User{}, p.UserID).Error; err != nil {
			if isNotFound(err) {
				return fmt.Errorf("user %d not found: %w", p.UserID, ErrNotFound)
			}
			return fmt.Errorf("getting user %d: %w", p.UserID, err)
		}
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
		return nil
	})
}

// FindByID loads the post together with its owner.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var p models.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&p, id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("post %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting post %d: %w", id, err)
	}
	return &p, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("listing posts of user %d: %w", userID, err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, p *models.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Post
		if err := tx.First(&existing, p.ID).Error; err != nil {
			if isNotFound(err) {
				return fmt.Errorf("post %d not found: %w", p.ID, ErrNotFound)
			}
			return fmt.Errorf("getting post %d: %w", p.ID, err)
		}

		existing.Title = p.Title
		existing.Content = p.Content
		if err := tx.Omit(clause.Associations).Save(&existing).Error; err != nil {
			return fmt.Errorf("updating post %d: %w", p.ID, err)
		}
		*p = existing
		return nil
	})
}

func (r *postRepository) Delete(ctx context.Context, id uint) (uint, error) {
	var ownerID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Post
		if err := tx.Select("id", "user_id").First(&existing, id).Error; err != nil {
			if isNotFound(err) {
				return fmt.Errorf("post %d not found: %w", id, ErrNotFound)
			}
			return fmt.Errorf("getting post %d: %w", id, err)
		}
		if err := tx.Delete(&models.Post{}, id).Error; err != nil {
			return fmt.Errorf("deleting post %d: %w", id, err)
		}
		ownerID = existing.UserID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}

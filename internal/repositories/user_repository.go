package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"blogly/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("user %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// Update overwrites the editable fields of an existing user. Save alone
// would insert a missing row, so existence is checked in the same transaction.
func (r *userRepository) Update(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.First(&existing, u.ID).Error; err != nil {
			if isNotFound(err) {
				return fmt.Errorf("user %d not found: %w", u.ID, ErrNotFound)
			}
			return fmt.Errorf("getting user %d: %w", u.ID, err)
		}

		existing.FirstName = u.FirstName
		existing.LastName = u.LastName
		existing.ImageURL = u.ImageURL
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("updating user %d: %w", u.ID, err)
		}
		*u = existing
		return nil
	})
}

// Delete removes the user and every post it owns in one transaction.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.User{}, id).Error; err != nil {
			if isNotFound(err) {
				return fmt.Errorf("user %d not found: %w", id, ErrNotFound)
			}
			return fmt.Errorf("getting user %d: %w", id, err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("deleting posts of user %d: %w", id, err)
		}
		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return fmt.Errorf("deleting user %d: %w", id, err)
		}
		return nil
	})
}

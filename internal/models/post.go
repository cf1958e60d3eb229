package models

import "time"

// Post belongs to exactly one User. The owner is only loaded on demand;
// a user's posts are always fetched by query on UserID.
type Post struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"type:text;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

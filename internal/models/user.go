package models

import (
	"time"
)

// DefaultImageURL is stored for users created or edited without an avatar.
const DefaultImageURL = "https://photolibrary.usap.gov/Tools/DrawImage.aspx?filename=emperor-penguin-noble.jpg"

type User struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	FirstName string `gorm:"type:text;not null"`
	LastName  string `gorm:"type:text;not null"`
	ImageURL  string `gorm:"type:text;not null"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

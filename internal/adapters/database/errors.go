package database

import (
	"errors"

	"gorm.io/gorm"
)

// translate maps gorm's not-found error onto the entity's own sentinel.
func translate(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

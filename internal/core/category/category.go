package category

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("category not found")

type Category struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"type:varchar(256);not null"`
	Description string    `gorm:"type:text;not null"`
	Slug        string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	IsPublished bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}

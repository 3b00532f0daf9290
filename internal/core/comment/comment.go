package comment

import (
	"errors"
	"time"

	"blogicum/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("comment not found")

type Comment struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Text      string    `gorm:"type:text;not null"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;index"`
	Author    user.User `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}

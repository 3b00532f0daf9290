package post

import (
	"errors"
	"time"

	"blogicum/internal/core/category"
	"blogicum/internal/core/location"
	"blogicum/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("post not found")

type Post struct {
	ID          uuid.UUID          `gorm:"primary_key;type:char(36)"`
	Title       string             `gorm:"type:varchar(256);not null"`
	Text        string             `gorm:"type:text;not null"`
	PubDate     time.Time          `gorm:"not null;index"`
	IsPublished bool               `gorm:"not null"`
	AuthorID    uuid.UUID          `gorm:"type:char(36);not null;index"`
	Author      user.User          `gorm:"foreignKey:AuthorID"`
	CategoryID  *uuid.UUID         `gorm:"type:char(36);index"`
	Category    *category.Category `gorm:"foreignKey:CategoryID"`
	LocationID  *uuid.UUID         `gorm:"type:char(36)"`
	Location    *location.Location `gorm:"foreignKey:LocationID"`
	CreatedAt   time.Time          `gorm:"autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime"`

	// تعداد کامنت‌ها، فقط هنگام کوئری پر می‌شود
	CommentCount int64 `gorm:"->;-:migration"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}

package comment

import (
	"context"
	"time"

	"blogicum/internal/core/comment"
	userPort "blogicum/internal/ports/user"

	"github.com/gofrs/uuid"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	Update(ctx context.Context, comment *comment.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error)
	// ListByPost returns the comments of a post, oldest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	PostID    string            `json:"post_id"`
	Author    *userPort.UserDTO `json:"author,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewCommentDTO(c *comment.Comment) *CommentDTO {
	dto := &CommentDTO{
		ID:        c.ID.String(),
		Text:      c.Text,
		PostID:    c.PostID.String(),
		CreatedAt: c.CreatedAt,
	}
	if c.Author.ID != uuid.Nil {
		dto.Author = userPort.NewUserDTO(&c.Author)
	}
	return dto
}

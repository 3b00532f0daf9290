package post

import (
	"context"
	"time"

	"blogicum/internal/core/pagination"
	"blogicum/internal/core/post"
	categoryPort "blogicum/internal/ports/category"
	commentPort "blogicum/internal/ports/comment"
	locationPort "blogicum/internal/ports/location"
	userPort "blogicum/internal/ports/user"

	"github.com/gofrs/uuid"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
//
// FindByID and List return posts with author, category, location and
// CommentCount filled in. List orders by pub_date descending, oldest
// insertion first on ties.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	Update(ctx context.Context, post *post.Post) error
	// Delete removes the post together with its comments.
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
	List(ctx context.Context, filter PostFilter, offset, limit int) ([]*post.Post, error)
}

// PostFilter narrows a listing. Nil fields do not restrict anything.
type PostFilter struct {
	AuthorID   *uuid.UUID
	CategoryID *uuid.UUID
	// VisibleBefore keeps only published posts in published (or no)
	// categories whose pub_date is strictly before the given instant.
	VisibleBefore *time.Time
}

// DTOها برای UseCase
type PostDTO struct {
	ID           string                    `json:"id"`
	Title        string                    `json:"title"`
	Text         string                    `json:"text"`
	PubDate      time.Time                 `json:"pub_date"`
	IsPublished  bool                      `json:"is_published"`
	Author       *userPort.UserDTO         `json:"author,omitempty"`
	Category     *categoryPort.CategoryDTO `json:"category,omitempty"`
	Location     *locationPort.LocationDTO `json:"location,omitempty"`
	CommentCount int64                     `json:"comment_count"`
	CreatedAt    time.Time                 `json:"created_at"`
}

type PostDetailDTO struct {
	*PostDTO
	Comments []*commentPort.CommentDTO `json:"comments"`
}

// CategoryPageDTO is a category page: the category and one page of its posts.
type CategoryPageDTO struct {
	Category *categoryPort.CategoryDTO `json:"category"`
	Posts    pagination.Page[*PostDTO] `json:"posts"`
}

// ProfilePageDTO is a profile page: the user and one page of their posts.
type ProfilePageDTO struct {
	Profile *userPort.UserDTO         `json:"profile"`
	Posts   pagination.Page[*PostDTO] `json:"posts"`
}

func NewPostDTO(p *post.Post) *PostDTO {
	dto := &PostDTO{
		ID:           p.ID.String(),
		Title:        p.Title,
		Text:         p.Text,
		PubDate:      p.PubDate,
		IsPublished:  p.IsPublished,
		Category:     categoryPort.NewCategoryDTO(p.Category),
		Location:     locationPort.NewLocationDTO(p.Location),
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
	}
	if p.Author.ID != uuid.Nil {
		dto.Author = userPort.NewUserDTO(&p.Author)
	}
	return dto
}

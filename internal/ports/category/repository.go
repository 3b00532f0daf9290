package category

import (
	"context"

	"blogicum/internal/core/category"

	"github.com/gofrs/uuid"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *category.Category) (*category.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error)
	FindBySlug(ctx context.Context, slug string) (*category.Category, error)
	ListPublished(ctx context.Context) ([]*category.Category, error)
}

type CategoryDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

func NewCategoryDTO(c *category.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Slug:        c.Slug,
	}
}

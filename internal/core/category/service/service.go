package categoryapp

import (
	"context"
	"fmt"
	"time"

	categoryEntity "blogicum/internal/core/category"
	"blogicum/internal/core/policy"
	postapp "blogicum/internal/core/post/service"
	categoryPort "blogicum/internal/ports/category"
	postPort "blogicum/internal/ports/post"
	"blogicum/internal/util"

	"go.uber.org/zap"
)

type CategoryService struct {
	CategoryRepository categoryPort.CategoryRepository
	PostRepository     postPort.PostRepository
	Logger             *zap.Logger
	Now                func() time.Time
}

func NewCategoryService(categoryRepo categoryPort.CategoryRepository, postRepo postPort.PostRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		CategoryRepository: categoryRepo,
		PostRepository:     postRepo,
		Logger:             logger,
		Now:                time.Now,
	}
}

// GetCategoryPage returns a published category with one page of its public
// posts. Unpublished categories are reported as missing.
func (s *CategoryService) GetCategoryPage(ctx context.Context, slug string, page int) (*postPort.CategoryPageDTO, error) {
	if !util.IsValidSlug(slug) {
		return nil, categoryEntity.ErrNotFound
	}

	c, err := s.CategoryRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("loading category: %w", err)
	}
	if !c.IsPublished {
		return nil, categoryEntity.ErrNotFound
	}

	filter := policy.PublicScope(s.Now())
	filter.CategoryID = &c.ID
	posts, err := postapp.ListPage(ctx, s.PostRepository, filter, page)
	if err != nil {
		return nil, err
	}

	return &postPort.CategoryPageDTO{
		Category: categoryPort.NewCategoryDTO(c),
		Posts:    posts,
	}, nil
}

// ListCategories لیست دسته‌بندی‌های منتشر شده
func (s *CategoryService) ListCategories(ctx context.Context) ([]*categoryPort.CategoryDTO, error) {
	categories, err := s.CategoryRepository.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	out := make([]*categoryPort.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryPort.NewCategoryDTO(c))
	}
	return out, nil
}

package memory

import (
	"context"
	"fmt"
	"sort"

	"blogicum/internal/core/category"
	"blogicum/internal/core/location"

	"github.com/gofrs/uuid"
)

type CategoryRepository struct {
	s *Store
}

func (r *CategoryRepository) Create(_ context.Context, c *category.Category) (*category.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.categories {
		if existing.Slug == c.Slug {
			return nil, fmt.Errorf("category slug %q: %w", c.Slug, ErrDuplicate)
		}
	}

	c.ID = newID(c.ID)
	c.CreatedAt = r.s.now()
	stored := *c
	r.s.categories[c.ID] = &stored
	return c, nil
}

func (r *CategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, category.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *CategoryRepository) FindBySlug(_ context.Context, slug string) (*category.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.categories {
		if c.Slug == slug {
			out := *c
			return &out, nil
		}
	}
	return nil, category.ErrNotFound
}

func (r *CategoryRepository) ListPublished(_ context.Context) ([]*category.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*category.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		if c.IsPublished {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

type LocationRepository struct {
	s *Store
}

func (r *LocationRepository) Create(_ context.Context, l *location.Location) (*location.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l.ID = newID(l.ID)
	l.CreatedAt = r.s.now()
	stored := *l
	r.s.locations[l.ID] = &stored
	return l, nil
}

func (r *LocationRepository) FindByID(_ context.Context, id uuid.UUID) (*location.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.locations[id]
	if !ok {
		return nil, location.ErrNotFound
	}
	out := *l
	return &out, nil
}

func (r *LocationRepository) List(_ context.Context) ([]*location.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*location.Location, 0, len(r.s.locations))
	for _, l := range r.s.locations {
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

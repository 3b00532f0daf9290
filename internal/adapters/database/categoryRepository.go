package database

import (
	"context"

	"blogicum/internal/core/category"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type CategoryRepositoryDatabase struct {
	db *gorm.DB
}

func NewCategoryRepositoryDatabase(db *gorm.DB) *CategoryRepositoryDatabase {
	return &CategoryRepositoryDatabase{db: db}
}

func (repo *CategoryRepositoryDatabase) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	if err := repo.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CategoryRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var c category.Category
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err, category.ErrNotFound)
	}
	return &c, nil
}

func (repo *CategoryRepositoryDatabase) FindBySlug(ctx context.Context, slug string) (*category.Category, error) {
	var c category.Category
	if err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, translate(err, category.ErrNotFound)
	}
	return &c, nil
}

func (repo *CategoryRepositoryDatabase) ListPublished(ctx context.Context) ([]*category.Category, error) {
	var categories []*category.Category
	if err := repo.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("title ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

package database

import (
	"context"

	"blogicum/internal/core/location"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type LocationRepositoryDatabase struct {
	db *gorm.DB
}

func NewLocationRepositoryDatabase(db *gorm.DB) *LocationRepositoryDatabase {
	return &LocationRepositoryDatabase{db: db}
}

func (repo *LocationRepositoryDatabase) Create(ctx context.Context, l *location.Location) (*location.Location, error) {
	if err := repo.db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (repo *LocationRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	var l location.Location
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, translate(err, location.ErrNotFound)
	}
	return &l, nil
}

func (repo *LocationRepositoryDatabase) List(ctx context.Context) ([]*location.Location, error) {
	var locations []*location.Location
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

package location

import (
	"context"

	"blogicum/internal/core/location"

	"github.com/gofrs/uuid"
)

type LocationRepository interface {
	Create(ctx context.Context, location *location.Location) (*location.Location, error)
	FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error)
	List(ctx context.Context) ([]*location.Location, error)
}

type LocationDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewLocationDTO(l *location.Location) *LocationDTO {
	if l == nil {
		return nil
	}
	return &LocationDTO{ID: l.ID.String(), Name: l.Name}
}

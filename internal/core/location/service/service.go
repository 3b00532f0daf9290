package locationapp

import (
	"context"
	"fmt"

	locationPort "blogicum/internal/ports/location"
)

type LocationService struct {
	LocationRepository locationPort.LocationRepository
}

func NewLocationService(repo locationPort.LocationRepository) *LocationService {
	return &LocationService{LocationRepository: repo}
}

func (s *LocationService) ListLocations(ctx context.Context) ([]*locationPort.LocationDTO, error) {
	locations, err := s.LocationRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	out := make([]*locationPort.LocationDTO, 0, len(locations))
	for _, l := range locations {
		out = append(out, locationPort.NewLocationDTO(l))
	}
	return out, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
)

// locationService exposes the location catalog and per-user assignments.
type locationService struct {
	BaseService
	locationRepo portsrepo.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo portsrepo.LocationRepository) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: locationRepo}
}

// Ensure locationService implements the LocationSvcFacade interface
var _ portssvc.LocationSvcFacade = (*locationService)(nil)

func (s *locationService) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("location %s not found", locationID))
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return location, nil
}

func (s *locationService) ListUserLocations(ctx context.Context, userID string) ([]domain.Location, error) {
	locations, err := s.locationRepo.ListLocationsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user locations: %w", err)
	}
	if locations == nil {
		return []domain.Location{}, nil
	}
	return locations, nil
}

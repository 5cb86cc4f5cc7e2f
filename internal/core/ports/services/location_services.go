package services

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// LocationReaderSvc defines read operations for location data
type LocationReaderSvc interface {
	// GetLocationByID retrieves a specific location.
	GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// ListUserLocations retrieves the active locations assigned to a user.
	ListUserLocations(ctx context.Context, userID string) ([]domain.Location, error)
}

// LocationSvcFacade combines all location-related service interfaces
type LocationSvcFacade interface {
	LocationReaderSvc
}

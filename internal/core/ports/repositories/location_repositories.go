package repositories

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// LocationRepository defines persistence operations for locations and
// user-location assignments.
type LocationRepository interface {
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// ListLocationsByUserID returns the active locations assigned to a user,
	// ordered by name.
	ListLocationsByUserID(ctx context.Context, userID string) ([]domain.Location, error)
}

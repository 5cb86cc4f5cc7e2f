package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
)

type PgxLocationRepository struct {
	BaseRepository
}

// newPgxLocationRepository creates a new repository for locations.
func newPgxLocationRepository(pool *pgxpool.Pool) portsrepo.LocationRepository {
	return &PgxLocationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LocationRepository = (*PgxLocationRepository)(nil)

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	query := `
		SELECT location_id, name, address, is_active, created_at
		FROM locations
		WHERE location_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query location %s: %w", locationID, err)
	}
	location, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Location])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan location %s: %w", locationID, err)
	}
	return &location, nil
}

func (r *PgxLocationRepository) ListLocationsByUserID(ctx context.Context, userID string) ([]domain.Location, error) {
	query := `
		SELECT l.location_id, l.name, l.address, l.is_active, l.created_at
		FROM locations l
		JOIN user_locations ul ON ul.location_id = l.location_id
		WHERE ul.user_id = $1 AND ul.is_active AND l.is_active
		ORDER BY l.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user locations: %w", err)
	}
	locations, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Location])
	if err != nil {
		return nil, fmt.Errorf("failed to scan user locations: %w", err)
	}
	return locations, nil
}

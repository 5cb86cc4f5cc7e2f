package repositories

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// AbsenceRepository defines persistence operations for absence records.
type AbsenceRepository interface {
	SaveAbsence(ctx context.Context, absence domain.Absence) error

	// ListForWorkDate returns all absences of a location for a logical work
	// date, newest first.
	ListForWorkDate(ctx context.Context, locationID, workDate string) ([]domain.Absence, error)

	DeleteAbsence(ctx context.Context, absenceID string) error

	ListAbsenceReasons(ctx context.Context) ([]domain.AbsenceReason, error)
}

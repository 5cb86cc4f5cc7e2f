package repositories

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// StatusReportRepository defines persistence operations for mid-turn status
// reports.
type StatusReportRepository interface {
	SaveStatusReport(ctx context.Context, report domain.StatusReport) error

	// FindLastReportNumber returns the highest report number issued for the
	// location on the given work date, or apperrors.ErrNotFound when the day
	// has no reports yet.
	FindLastReportNumber(ctx context.Context, locationID, workDate string) (string, error)

	// ListStatusReports lists a location's reports between two work dates
	// (inclusive, either bound optional), newest first.
	ListStatusReports(ctx context.Context, locationID string, from, to *string) ([]domain.StatusReport, error)
}

// TurnNoteRepository defines persistence for the running note of the active
// turn. SaveTurnNote is an upsert keyed on (location, work date).
type TurnNoteRepository interface {
	SaveTurnNote(ctx context.Context, note domain.TurnNote) error

	// FindTurnNote returns the note for the work date, or
	// apperrors.ErrNotFound when none has been written.
	FindTurnNote(ctx context.Context, locationID, workDate string) (*domain.TurnNote, error)
}

package repositories

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// ClosingRepository defines persistence operations for turn and day
// closings. Uniqueness per (location, work date, turn) and per
// (location, work date) is enforced by database constraints; Save methods
// surface a violation as apperrors.ErrAlreadyClosed.
type ClosingRepository interface {
	SaveTurnClosing(ctx context.Context, closing domain.TurnClosing) error

	// ListTurnClosings returns the closings of a work date ordered by
	// closing time ascending.
	ListTurnClosings(ctx context.Context, locationID, workDate string) ([]domain.TurnClosing, error)

	// FindLastTurnClosing returns the most recent turn closing for the work
	// date, or apperrors.ErrNotFound when the date has none.
	FindLastTurnClosing(ctx context.Context, locationID, workDate string) (*domain.TurnClosing, error)

	FindTurnClosingByID(ctx context.Context, closingID string) (*domain.TurnClosing, error)

	// ListTurnClosingsRange lists closings of a location between two work
	// dates (inclusive, either bound optional), newest first.
	ListTurnClosingsRange(ctx context.Context, locationID string, from, to *string) ([]domain.TurnClosing, error)

	SaveDayClosing(ctx context.Context, closing domain.DayClosing) error

	// FindDayClosing returns the day closing for a work date, or
	// apperrors.ErrNotFound when the day has not been closed.
	FindDayClosing(ctx context.Context, locationID, workDate string) (*domain.DayClosing, error)

	ListDayClosingsRange(ctx context.Context, locationID string, from, to *string) ([]domain.DayClosing, error)
}

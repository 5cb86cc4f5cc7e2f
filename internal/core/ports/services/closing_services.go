package services

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// ClosingReaderSvc defines read operations for committed closings
type ClosingReaderSvc interface {
	// PreviewClosing builds the aggregated snapshot the current turn would commit,
	// without persisting anything.
	PreviewClosing(ctx context.Context, locationID string) (*domain.ClosingSnapshot, domain.TurnInfo, error)

	// GetTurnClosingByID retrieves a specific turn closing.
	GetTurnClosingByID(ctx context.Context, closingID string) (*domain.TurnClosing, error)

	// ListTurnClosings retrieves turn closings for a location, optionally bounded
	// by an inclusive work-date range.
	ListTurnClosings(ctx context.Context, locationID string, fromDate, toDate *string) ([]domain.TurnClosing, error)

	// ListDayClosings retrieves day closings for a location, optionally bounded
	// by an inclusive work-date range.
	ListDayClosings(ctx context.Context, locationID string, fromDate, toDate *string) ([]domain.DayClosing, error)
}

// ClosingWriterSvc defines write operations for closings
type ClosingWriterSvc interface {
	// CloseTurn commits a turn closing. With a nil turn the current turn is
	// derived from prior closings; an explicit turn covers the post-midnight
	// window in which the second turn closes, when no turn identifies as
	// open. The snapshot is rebuilt at commit time; eligibility windows and
	// duplicate commits are enforced.
	CloseTurn(ctx context.Context, locationID string, turn *domain.TurnLabel, generalNotes string, userID string) (*domain.TurnClosing, error)

	// CloseDay commits the whole-day closing once both turns are committed.
	CloseDay(ctx context.Context, locationID string, generalNotes string, userID string) (*domain.DayClosing, error)
}

// ClosingSvcFacade combines all closing-related service interfaces
type ClosingSvcFacade interface {
	ClosingReaderSvc
	ClosingWriterSvc
}

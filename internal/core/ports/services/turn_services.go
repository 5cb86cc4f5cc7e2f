package services

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// TurnReaderSvc defines read operations for turn state
type TurnReaderSvc interface {
	// CurrentWorkDate returns the operational date the clock currently falls in.
	CurrentWorkDate() string

	// IdentifyCurrentTurn derives the active turn for a location from its
	// committed closings. It never fails outright: when closings cannot be
	// read the result carries the first-turn default with Degraded set.
	IdentifyCurrentTurn(ctx context.Context, locationID string) domain.TurnInfo
}

// TurnSvcFacade combines all turn-related service interfaces
type TurnSvcFacade interface {
	TurnReaderSvc
}

// TurnNoteReaderSvc defines read operations for the shared turn note
type TurnNoteReaderSvc interface {
	// GetTurnNote retrieves the shared note for the location's current work date.
	GetTurnNote(ctx context.Context, locationID string) (*domain.TurnNote, error)
}

// TurnNoteWriterSvc defines write operations for the shared turn note
type TurnNoteWriterSvc interface {
	// SaveTurnNote creates or replaces the shared note for the location's current work date.
	SaveTurnNote(ctx context.Context, locationID string, content string, userID string) (*domain.TurnNote, error)
}

// TurnNoteSvcFacade combines all turn-note service interfaces
type TurnNoteSvcFacade interface {
	TurnNoteReaderSvc
	TurnNoteWriterSvc
}

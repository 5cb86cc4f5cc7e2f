package services

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
	"github.com/smartdom/shift_management_app/internal/dto"
)

// AbsenceReaderSvc defines read operations for absence data
type AbsenceReaderSvc interface {
	// ListOpenTurnAbsences retrieves the absences belonging to the location's
	// current open turn window.
	ListOpenTurnAbsences(ctx context.Context, locationID string) ([]domain.Absence, error)

	// ListAbsenceReasons retrieves the active absence reason catalog.
	ListAbsenceReasons(ctx context.Context) ([]domain.AbsenceReason, error)
}

// AbsenceWriterSvc defines write operations for absence data
type AbsenceWriterSvc interface {
	// RegisterAbsence persists a new absence against the current work date.
	RegisterAbsence(ctx context.Context, locationID string, req dto.CreateAbsenceRequest, userID string) (*domain.Absence, error)

	// DeleteAbsence removes an absence that has not been swept into a closing.
	DeleteAbsence(ctx context.Context, absenceID string, userID string) error
}

// AbsenceSvcFacade combines all absence-related service interfaces
type AbsenceSvcFacade interface {
	AbsenceReaderSvc
	AbsenceWriterSvc
}

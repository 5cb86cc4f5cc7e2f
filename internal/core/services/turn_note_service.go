package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/utils/workday"
)

// turnNoteService keeps the single running note of the active turn, one row
// per location and work date, overwritten in place.
type turnNoteService struct {
	BaseService
	noteRepo    portsrepo.TurnNoteRepository
	cutoverHour int
	now         func() time.Time
}

// TurnNoteServiceOption is a functional option for configuring the turn note service
type TurnNoteServiceOption func(*turnNoteService)

// WithTurnNoteClock overrides the wall clock, used by tests.
func WithTurnNoteClock(now func() time.Time) TurnNoteServiceOption {
	return func(s *turnNoteService) {
		s.now = now
	}
}

// NewTurnNoteService creates a new turn note service with the provided options
func NewTurnNoteService(noteRepo portsrepo.TurnNoteRepository, cutoverHour int, options ...TurnNoteServiceOption) portssvc.TurnNoteSvcFacade {
	svc := &turnNoteService{
		noteRepo:    noteRepo,
		cutoverHour: cutoverHour,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure turnNoteService implements the TurnNoteSvcFacade interface
var _ portssvc.TurnNoteSvcFacade = (*turnNoteService)(nil)

func (s *turnNoteService) GetTurnNote(ctx context.Context, locationID string) (*domain.TurnNote, error) {
	workDate := workday.WorkDate(s.now(), s.cutoverHour)

	note, err := s.noteRepo.FindTurnNote(ctx, locationID, workDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No note yet is normal, return an empty one.
			return &domain.TurnNote{LocationID: locationID, WorkDate: workDate}, nil
		}
		return nil, fmt.Errorf("failed to find turn note: %w", err)
	}
	return note, nil
}

func (s *turnNoteService) SaveTurnNote(ctx context.Context, locationID string, content string, userID string) (*domain.TurnNote, error) {
	now := s.now()
	note := domain.TurnNote{
		LocationID: locationID,
		WorkDate:   workday.WorkDate(now, s.cutoverHour),
		Content:    content,
		UpdatedBy:  userID,
		UpdatedAt:  now,
	}

	if err := s.noteRepo.SaveTurnNote(ctx, note); err != nil {
		s.LogError(ctx, err, "Failed to save turn note",
			slog.String("location_id", locationID),
			slog.String("work_date", note.WorkDate))
		return nil, fmt.Errorf("failed to save turn note: %w", err)
	}

	return &note, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/smartdom/shift_management_app/internal/utils/workday"
)

// absenceService registers employee absences against the current work date.
type absenceService struct {
	BaseService
	absenceRepo portsrepo.AbsenceRepository
	closingRepo portsrepo.ClosingRepository
	cutoverHour int
	now         func() time.Time
}

// AbsenceServiceOption is a functional option for configuring the absence service
type AbsenceServiceOption func(*absenceService)

// WithAbsenceClock overrides the wall clock, used by tests.
func WithAbsenceClock(now func() time.Time) AbsenceServiceOption {
	return func(s *absenceService) {
		s.now = now
	}
}

// NewAbsenceService creates a new absence service with the provided options
func NewAbsenceService(
	absenceRepo portsrepo.AbsenceRepository,
	closingRepo portsrepo.ClosingRepository,
	cutoverHour int,
	options ...AbsenceServiceOption,
) portssvc.AbsenceSvcFacade {
	svc := &absenceService{
		absenceRepo: absenceRepo,
		closingRepo: closingRepo,
		cutoverHour: cutoverHour,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure absenceService implements the AbsenceSvcFacade interface
var _ portssvc.AbsenceSvcFacade = (*absenceService)(nil)

func (s *absenceService) RegisterAbsence(ctx context.Context, locationID string, req dto.CreateAbsenceRequest, userID string) (*domain.Absence, error) {
	now := s.now()
	absence := domain.Absence{
		AbsenceID:    uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		LocationID:   locationID,
		ReasonID:     req.ReasonID,
		WorkDate:     workday.WorkDate(now, s.cutoverHour),
		Notes:        req.Notes,
		RegisteredBy: userID,
		CreatedAt:    now,
	}

	if err := s.absenceRepo.SaveAbsence(ctx, absence); err != nil {
		s.LogError(ctx, err, "Failed to save absence",
			slog.String("employee_id", req.EmployeeID),
			slog.String("location_id", locationID))
		return nil, fmt.Errorf("failed to save absence: %w", err)
	}

	s.LogInfo(ctx, "Absence registered",
		slog.String("absence_id", absence.AbsenceID),
		slog.String("employee_id", req.EmployeeID))

	return &absence, nil
}

func (s *absenceService) ListOpenTurnAbsences(ctx context.Context, locationID string) ([]domain.Absence, error) {
	now := s.now()
	workDate := workday.WorkDate(now, s.cutoverHour)

	var lastClosing *time.Time
	last, err := s.closingRepo.FindLastTurnClosing(ctx, locationID, workDate)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to find last turn closing: %w", err)
		}
	} else {
		t := last.ClosedAt
		lastClosing = &t
	}

	absences, err := s.absenceRepo.ListForWorkDate(ctx, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	filtered := make([]domain.Absence, 0, len(absences))
	for _, a := range absences {
		if workday.InOpenWindow(a.CreatedAt, lastClosing, s.cutoverHour) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (s *absenceService) DeleteAbsence(ctx context.Context, absenceID string, userID string) error {
	if err := s.absenceRepo.DeleteAbsence(ctx, absenceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("absence %s not found", absenceID))
		}
		s.LogError(ctx, err, "Failed to delete absence",
			slog.String("absence_id", absenceID))
		return fmt.Errorf("failed to delete absence: %w", err)
	}

	s.LogInfo(ctx, "Absence deleted",
		slog.String("absence_id", absenceID),
		slog.String("deleted_by", userID))
	return nil
}

func (s *absenceService) ListAbsenceReasons(ctx context.Context) ([]domain.AbsenceReason, error) {
	reasons, err := s.absenceRepo.ListAbsenceReasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence reasons: %w", err)
	}
	if reasons == nil {
		return []domain.AbsenceReason{}, nil
	}
	return reasons, nil
}

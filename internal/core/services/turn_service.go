package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/utils/workday"
)

// turnService derives the active turn for a location from its committed
// closings. It holds no state of its own; the closing rows are the source
// of truth.
type turnService struct {
	BaseService
	closingRepo portsrepo.ClosingRepository
	cutoverHour int
	now         func() time.Time
}

// TurnServiceOption is a functional option for configuring the turn service
type TurnServiceOption func(*turnService)

// WithTurnClock overrides the wall clock, used by tests.
func WithTurnClock(now func() time.Time) TurnServiceOption {
	return func(s *turnService) {
		s.now = now
	}
}

// NewTurnService creates a new turn service with the provided options
func NewTurnService(closingRepo portsrepo.ClosingRepository, cutoverHour int, options ...TurnServiceOption) portssvc.TurnSvcFacade {
	svc := &turnService{
		closingRepo: closingRepo,
		cutoverHour: cutoverHour,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure turnService implements the TurnSvcFacade interface
var _ portssvc.TurnSvcFacade = (*turnService)(nil)

func (s *turnService) CurrentWorkDate() string {
	return workday.WorkDate(s.now(), s.cutoverHour)
}

// IdentifyCurrentTurn resolves the turn state machine for the location's
// current work date. A repository failure does not surface as an error:
// the caller gets the first-turn default flagged as Degraded, so the
// operation keeps working while the incident is logged.
func (s *turnService) IdentifyCurrentTurn(ctx context.Context, locationID string) domain.TurnInfo {
	now := s.now()
	hour := now.Hour()
	workDate := workday.WorkDate(now, s.cutoverHour)

	if hour < s.cutoverHour {
		return domain.TurnInfo{
			Message: fmt.Sprintf("Aún no es hora de abrir turno (antes de %d:00 AM)", s.cutoverHour),
		}
	}

	closings, err := s.closingRepo.ListTurnClosings(ctx, locationID, workDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list turn closings, falling back to first turn",
			slog.String("location_id", locationID),
			slog.String("work_date", workDate))
		first := domain.TurnFirst
		return domain.TurnInfo{
			Turn:       &first,
			TurnNumber: 1,
			Message:    "Primer turno del día (default)",
			Closable:   workday.FirstTurnCloseEligibility(now).Allowed,
			Degraded:   true,
		}
	}

	switch {
	case len(closings) == 0:
		first := domain.TurnFirst
		return domain.TurnInfo{
			Turn:       &first,
			TurnNumber: 1,
			Message:    "Primer turno del día (puede cerrarse después de las 17:00 hs)",
			Closable:   workday.FirstTurnCloseEligibility(now).Allowed,
		}
	case len(closings) == 1:
		if hour < 17 {
			return domain.TurnInfo{
				Message: "El segundo turno solo puede iniciarse después de las 17:00 hs. El primer turno ya fue cerrado.",
			}
		}
		second := domain.TurnSecond
		return domain.TurnInfo{
			Turn:       &second,
			TurnNumber: 2,
			Message:    "Segundo turno del día (puede cerrarse después de las 00:00 hs)",
			Closable:   workday.SecondTurnCloseEligibility(now).Allowed,
		}
	default:
		return domain.TurnInfo{
			Message: "Ya se cerraron los dos turnos del día",
		}
	}
}

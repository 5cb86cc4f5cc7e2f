package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/utils/money"
	"github.com/smartdom/shift_management_app/internal/utils/workday"
)

// closingService builds closing snapshots and commits turn and day
// closings. The snapshot is always rebuilt from the repositories at commit
// time; the insert is the last step, so a failed read never leaves a
// half-committed closing behind.
type closingService struct {
	BaseService
	closingRepo    portsrepo.ClosingRepository
	attendanceRepo portsrepo.AttendanceRepository
	voucherRepo    portsrepo.VoucherRepository
	absenceRepo    portsrepo.AbsenceRepository
	turnService    portssvc.TurnSvcFacade
	cutoverHour    int
	now            func() time.Time
}

// ClosingServiceOption is a functional option for configuring the closing service
type ClosingServiceOption func(*closingService)

// WithClosingClock overrides the wall clock, used by tests.
func WithClosingClock(now func() time.Time) ClosingServiceOption {
	return func(s *closingService) {
		s.now = now
	}
}

// NewClosingService creates a new closing service with the provided options
func NewClosingService(
	closingRepo portsrepo.ClosingRepository,
	attendanceRepo portsrepo.AttendanceRepository,
	voucherRepo portsrepo.VoucherRepository,
	absenceRepo portsrepo.AbsenceRepository,
	turnService portssvc.TurnSvcFacade,
	cutoverHour int,
	options ...ClosingServiceOption,
) portssvc.ClosingSvcFacade {
	svc := &closingService{
		closingRepo:    closingRepo,
		attendanceRepo: attendanceRepo,
		voucherRepo:    voucherRepo,
		absenceRepo:    absenceRepo,
		turnService:    turnService,
		cutoverHour:    cutoverHour,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure closingService implements the ClosingSvcFacade interface
var _ portssvc.ClosingSvcFacade = (*closingService)(nil)

// lastClosingTime returns the timestamp of the work date's most recent turn
// closing, or nil when the date has none yet.
func (s *closingService) lastClosingTime(ctx context.Context, locationID, workDate string) (*time.Time, error) {
	last, err := s.closingRepo.FindLastTurnClosing(ctx, locationID, workDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find last turn closing: %w", err)
	}
	t := last.ClosedAt
	return &t, nil
}

// buildSnapshot aggregates the open-turn records of the work date into an
// immutable snapshot. Records are fetched for the whole work date and then
// narrowed to the open window: everything from the work-day start when no
// closing exists yet, or strictly after the last closing otherwise.
func (s *closingService) buildSnapshot(ctx context.Context, locationID, workDate string, info domain.TurnInfo) (*domain.ClosingSnapshot, error) {
	lastClosing, err := s.lastClosingTime(ctx, locationID, workDate)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListForWorkDate(ctx, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	vouchers, err := s.voucherRepo.ListForWorkDate(ctx, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	absences, err := s.absenceRepo.ListForWorkDate(ctx, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	snapshot := &domain.ClosingSnapshot{
		WorkDate:   workDate,
		Turn:       info.Turn,
		TurnNumber: info.TurnNumber,
		Personnel:  []domain.SnapshotPerson{},
		Vouchers:   []domain.SnapshotVoucher{},
		Absences:   []domain.SnapshotAbsence{},
	}
	if lastClosing != nil {
		snapshot.WindowStart = lastClosing.Format("15:04")
	} else {
		snapshot.WindowStart = fmt.Sprintf("%02d:00", s.cutoverHour)
	}

	for _, r := range records {
		if !workday.InOpenWindow(r.ClockInAt, lastClosing, s.cutoverHour) {
			continue
		}
		snapshot.Personnel = append(snapshot.Personnel, domain.SnapshotPerson{
			RecordID:   r.RecordID,
			Employee:   r.EmployeeName,
			Document:   r.EmployeeDocument,
			Role:       r.RoleName,
			ClockInAt:  r.ClockInAt,
			ClockOutAt: r.ClockOutAt,
			Notes:      r.Notes,
		})
		if r.IsOpen() {
			snapshot.PersonnelActive++
		} else {
			snapshot.PersonnelFinished++
		}
	}

	amounts := make([]decimal.Decimal, 0, len(vouchers))
	for _, v := range vouchers {
		if !workday.InOpenWindow(v.CreatedAt, lastClosing, s.cutoverHour) {
			continue
		}
		amounts = append(amounts, v.Amount)
		snapshot.Vouchers = append(snapshot.Vouchers, domain.SnapshotVoucher{
			VoucherID: v.VoucherID,
			Employee:  v.EmployeeName,
			Amount:    v.Amount,
			Reason:    v.ReasonName,
			Concept:   v.Concept,
		})
	}
	snapshot.TotalVoucher = money.SumCents(amounts)
	snapshot.VoucherCount = len(snapshot.Vouchers)

	for _, a := range absences {
		if !workday.InOpenWindow(a.CreatedAt, lastClosing, s.cutoverHour) {
			continue
		}
		snapshot.Absences = append(snapshot.Absences, domain.SnapshotAbsence{
			AbsenceID: a.AbsenceID,
			Employee:  a.EmployeeName,
			Reason:    a.ReasonName,
			Notes:     a.Notes,
		})
	}
	snapshot.AbsenceCount = len(snapshot.Absences)

	return snapshot, nil
}

func (s *closingService) PreviewClosing(ctx context.Context, locationID string) (*domain.ClosingSnapshot, domain.TurnInfo, error) {
	workDate := s.turnService.CurrentWorkDate()
	info := s.turnService.IdentifyCurrentTurn(ctx, locationID)

	snapshot, err := s.buildSnapshot(ctx, locationID, workDate, info)
	if err != nil {
		s.LogError(ctx, err, "Failed to build closing preview",
			slog.String("location_id", locationID),
			slog.String("work_date", workDate))
		return nil, info, err
	}
	return snapshot, info, nil
}

func (s *closingService) CloseTurn(ctx context.Context, locationID string, turn *domain.TurnLabel, generalNotes string, userID string) (*domain.TurnClosing, error) {
	now := s.now()
	workDate := s.turnService.CurrentWorkDate()
	info := s.turnService.IdentifyCurrentTurn(ctx, locationID)

	// An explicit turn covers the window where the identifier reports no
	// open turn: the second turn closes after midnight, before the cutover
	// hour, so the caller has to name it. It cannot contradict an open
	// turn, and the second turn never closes before the first.
	if turn != nil {
		if *turn != domain.TurnFirst && *turn != domain.TurnSecond {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown turn %q", *turn))
		}
		if info.Turn != nil && *info.Turn != *turn {
			return nil, apperrors.NewValidationFailedError(
				fmt.Sprintf("El turno indicado (%s) no coincide con el turno abierto (%s).", *turn, *info.Turn))
		}
		if *turn == domain.TurnSecond {
			closed, err := s.closingRepo.ListTurnClosings(ctx, locationID, workDate)
			if err != nil {
				return nil, fmt.Errorf("failed to list turn closings: %w", err)
			}
			if len(closed) == 0 {
				return nil, apperrors.NewValidationFailedError(
					"El segundo turno no puede cerrarse antes que el primero.")
			}
		}
		info.Turn = turn
		if *turn == domain.TurnFirst {
			info.TurnNumber = 1
		} else {
			info.TurnNumber = 2
		}
	}

	if info.Turn == nil {
		return nil, apperrors.NewValidationFailedError(info.Message)
	}

	var eligibility workday.Eligibility
	switch *info.Turn {
	case domain.TurnFirst:
		eligibility = workday.FirstTurnCloseEligibility(now)
	case domain.TurnSecond:
		eligibility = workday.SecondTurnCloseEligibility(now)
	default:
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown turn %q", *info.Turn))
	}
	if !eligibility.Allowed {
		return nil, apperrors.NewNotYetEligibleError(eligibility.Message)
	}

	snapshot, err := s.buildSnapshot(ctx, locationID, workDate, info)
	if err != nil {
		s.LogError(ctx, err, "Failed to build closing snapshot",
			slog.String("location_id", locationID),
			slog.String("work_date", workDate))
		return nil, err
	}

	reportJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal closing snapshot: %w", err)
	}

	closing := domain.TurnClosing{
		ClosingID:    uuid.NewString(),
		LocationID:   locationID,
		WorkDate:     workDate,
		Turn:         *info.Turn,
		ClosedAt:     now,
		TotalVoucher: snapshot.TotalVoucher,
		GeneralNotes: generalNotes,
		ClosedBy:     userID,
		Report:       reportJSON,
	}

	// Persisting is the last step: every read above already succeeded, so
	// a commit either lands whole or not at all.
	if err := s.closingRepo.SaveTurnClosing(ctx, closing); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyClosed) {
			s.LogWarn(ctx, "Turn already closed",
				slog.String("location_id", locationID),
				slog.String("work_date", workDate),
				slog.String("turn", string(*info.Turn)))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save turn closing",
			slog.String("location_id", locationID),
			slog.String("work_date", workDate))
		return nil, fmt.Errorf("failed to save turn closing: %w", err)
	}

	s.LogInfo(ctx, "Turn closed",
		slog.String("location_id", locationID),
		slog.String("work_date", workDate),
		slog.String("turn", string(*info.Turn)),
		slog.String("total_voucher", snapshot.TotalVoucher.String()))

	return &closing, nil
}

func (s *closingService) CloseDay(ctx context.Context, locationID string, generalNotes string, userID string) (*domain.DayClosing, error) {
	now := s.now()
	workDate := workday.WorkDate(now, s.cutoverHour)

	eligibility := workday.DayCloseEligibility(now)
	if !eligibility.Allowed {
		return nil, apperrors.NewNotYetEligibleError(eligibility.Message)
	}

	// The day close does not count turn closings. A location that ran a
	// single turn still closes its day; only the time window and day-level
	// uniqueness gate the commit.
	snapshot, err := s.buildDaySnapshot(ctx, locationID, workDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to build day snapshot",
			slog.String("location_id", locationID),
			slog.String("work_date", workDate))
		return nil, err
	}

	reportJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal day snapshot: %w", err)
	}

	closing := domain.DayClosing{
		ClosingID:    uuid.NewString(),
		LocationID:   locationID,
		WorkDate:     workDate,
		ClosedAt:     now,
		TotalVoucher: snapshot.TotalVoucher,
		GeneralNotes: generalNotes,
		ClosedBy:     userID,
		Report:       reportJSON,
	}

	if err := s.closingRepo.SaveDayClosing(ctx, closing); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyClosed) {
			s.LogWarn(ctx, "Day already closed",
				slog.String("location_id", locationID),
				slog.String("work_date", workDate))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save day closing",
			slog.String("location_id", locationID),
			slog.String("work_date", workDate))
		return nil, fmt.Errorf("failed to save day closing: %w", err)
	}

	s.LogInfo(ctx, "Day closed",
		slog.String("location_id", locationID),
		slog.String("work_date", workDate),
		slog.String("total_voucher", snapshot.TotalVoucher.String()))

	return &closing, nil
}

// buildDaySnapshot aggregates every record of the work date without window
// filtering.
func (s *closingService) buildDaySnapshot(ctx context.Context, locationID, workDate string) (*domain.ClosingSnapshot, error) {
	records, err := s.attendanceRepo.ListForWorkDate(ctx, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	vouchers, err := s.voucherRepo.ListForWorkDate(ctx, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	absences, err := s.absenceRepo.ListForWorkDate(ctx, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	snapshot := &domain.ClosingSnapshot{
		WorkDate:    workDate,
		WindowStart: fmt.Sprintf("%02d:00", s.cutoverHour),
		Personnel:   make([]domain.SnapshotPerson, 0, len(records)),
		Vouchers:    make([]domain.SnapshotVoucher, 0, len(vouchers)),
		Absences:    make([]domain.SnapshotAbsence, 0, len(absences)),
	}

	for _, r := range records {
		snapshot.Personnel = append(snapshot.Personnel, domain.SnapshotPerson{
			RecordID:   r.RecordID,
			Employee:   r.EmployeeName,
			Document:   r.EmployeeDocument,
			Role:       r.RoleName,
			ClockInAt:  r.ClockInAt,
			ClockOutAt: r.ClockOutAt,
			Notes:      r.Notes,
		})
		if r.IsOpen() {
			snapshot.PersonnelActive++
		} else {
			snapshot.PersonnelFinished++
		}
	}

	dayAmounts := make([]decimal.Decimal, 0, len(vouchers))
	for _, v := range vouchers {
		dayAmounts = append(dayAmounts, v.Amount)
		snapshot.Vouchers = append(snapshot.Vouchers, domain.SnapshotVoucher{
			VoucherID: v.VoucherID,
			Employee:  v.EmployeeName,
			Amount:    v.Amount,
			Reason:    v.ReasonName,
			Concept:   v.Concept,
		})
	}
	snapshot.TotalVoucher = money.SumCents(dayAmounts)
	snapshot.VoucherCount = len(snapshot.Vouchers)

	for _, a := range absences {
		snapshot.Absences = append(snapshot.Absences, domain.SnapshotAbsence{
			AbsenceID: a.AbsenceID,
			Employee:  a.EmployeeName,
			Reason:    a.ReasonName,
			Notes:     a.Notes,
		})
	}
	snapshot.AbsenceCount = len(snapshot.Absences)

	return snapshot, nil
}

func (s *closingService) GetTurnClosingByID(ctx context.Context, closingID string) (*domain.TurnClosing, error) {
	closing, err := s.closingRepo.FindTurnClosingByID(ctx, closingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("turn closing %s not found", closingID))
		}
		return nil, fmt.Errorf("failed to find turn closing: %w", err)
	}
	return closing, nil
}

func (s *closingService) ListTurnClosings(ctx context.Context, locationID string, fromDate, toDate *string) ([]domain.TurnClosing, error) {
	closings, err := s.closingRepo.ListTurnClosingsRange(ctx, locationID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list turn closings: %w", err)
	}
	if closings == nil {
		return []domain.TurnClosing{}, nil
	}
	return closings, nil
}

func (s *closingService) ListDayClosings(ctx context.Context, locationID string, fromDate, toDate *string) ([]domain.DayClosing, error) {
	closings, err := s.closingRepo.ListDayClosingsRange(ctx, locationID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list day closings: %w", err)
	}
	if closings == nil {
		return []domain.DayClosing{}, nil
	}
	return closings, nil
}

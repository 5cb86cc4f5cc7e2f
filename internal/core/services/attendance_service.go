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

// attendanceService registers clock-ins and clock-outs. Clock-ins are
// assigned the logical work date of the moment they happen, so shifts that
// start after midnight stay on the previous day's date.
type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepository
	closingRepo    portsrepo.ClosingRepository
	cutoverHour    int
	now            func() time.Time
}

// AttendanceServiceOption is a functional option for configuring the attendance service
type AttendanceServiceOption func(*attendanceService)

// WithAttendanceClock overrides the wall clock, used by tests.
func WithAttendanceClock(now func() time.Time) AttendanceServiceOption {
	return func(s *attendanceService) {
		s.now = now
	}
}

// NewAttendanceService creates a new attendance service with the provided options
func NewAttendanceService(
	attendanceRepo portsrepo.AttendanceRepository,
	closingRepo portsrepo.ClosingRepository,
	cutoverHour int,
	options ...AttendanceServiceOption,
) portssvc.AttendanceSvcFacade {
	svc := &attendanceService{
		attendanceRepo: attendanceRepo,
		closingRepo:    closingRepo,
		cutoverHour:    cutoverHour,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure attendanceService implements the AttendanceSvcFacade interface
var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

func (s *attendanceService) ClockIn(ctx context.Context, locationID string, req dto.ClockInRequest, userID string) (*domain.AttendanceRecord, error) {
	// One open record per employee across all locations.
	open, err := s.attendanceRepo.FindOpenByEmployee(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for open attendance record",
			slog.String("employee_id", req.EmployeeID))
		return nil, fmt.Errorf("failed to check for open attendance record: %w", err)
	}
	if open != nil {
		locationName := open.LocationName
		if locationName == "" {
			locationName = "otro local"
		}
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("El empleado ya tiene un turno abierto en: %s. Debe registrar salida primero.", locationName))
	}

	now := s.now()
	record := domain.AttendanceRecord{
		RecordID:   uuid.NewString(),
		EmployeeID: req.EmployeeID,
		LocationID: locationID,
		RoleID:     req.RoleID,
		WorkDate:   workday.WorkDate(now, s.cutoverHour),
		ClockInAt:  now,
		ClockInBy:  userID,
		Notes:      req.Notes,
	}

	if err := s.attendanceRepo.SaveAttendance(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save attendance record",
			slog.String("employee_id", req.EmployeeID),
			slog.String("location_id", locationID))
		return nil, fmt.Errorf("failed to save attendance record: %w", err)
	}

	s.LogInfo(ctx, "Employee clocked in",
		slog.String("record_id", record.RecordID),
		slog.String("employee_id", req.EmployeeID),
		slog.String("location_id", locationID),
		slog.String("work_date", record.WorkDate))

	saved, err := s.attendanceRepo.FindAttendanceByID(ctx, record.RecordID)
	if err != nil {
		// The insert went through, return what we have.
		return &record, nil
	}
	return saved, nil
}

func (s *attendanceService) ClockOut(ctx context.Context, recordID string, req dto.ClockOutRequest, userID string) (*domain.AttendanceRecord, error) {
	record, err := s.attendanceRepo.FindAttendanceByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("attendance record %s not found", recordID))
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}
	if !record.IsOpen() {
		return nil, apperrors.NewValidationFailedError("El registro ya tiene salida registrada.")
	}

	updated, err := s.attendanceRepo.SetClockOut(ctx, recordID, s.now(), userID, req.Notes)
	if err != nil {
		s.LogError(ctx, err, "Failed to set clock-out",
			slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to set clock-out: %w", err)
	}

	s.LogInfo(ctx, "Employee clocked out",
		slog.String("record_id", recordID),
		slog.String("employee_id", updated.EmployeeID))

	return updated, nil
}

// openWindowRecords narrows a work date's records to the currently open
// turn window.
func (s *attendanceService) openWindowRecords(ctx context.Context, locationID string) ([]domain.AttendanceRecord, error) {
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

	records, err := s.attendanceRepo.ListForWorkDate(ctx, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	filtered := make([]domain.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if workday.InOpenWindow(r.ClockInAt, lastClosing, s.cutoverHour) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *attendanceService) ListOpenTurnRecords(ctx context.Context, locationID string) ([]domain.AttendanceRecord, error) {
	return s.openWindowRecords(ctx, locationID)
}

func (s *attendanceService) ListActiveRecords(ctx context.Context, locationID string) ([]domain.AttendanceRecord, error) {
	records, err := s.openWindowRecords(ctx, locationID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.IsOpen() {
			active = append(active, r)
		}
	}
	return active, nil
}

func (s *attendanceService) ListEmployeeHistory(ctx context.Context, employeeID string, locationID string, fromDate, toDate *string) ([]domain.AttendanceRecord, error) {
	records, err := s.attendanceRepo.ListEmployeeHistory(ctx, employeeID, locationID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee history: %w", err)
	}
	if records == nil {
		return []domain.AttendanceRecord{}, nil
	}
	return records, nil
}

package services

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
	"github.com/smartdom/shift_management_app/internal/dto"
)

// AttendanceReaderSvc defines read operations for attendance data
type AttendanceReaderSvc interface {
	// ListOpenTurnRecords retrieves the attendance records belonging to the
	// location's current open turn window.
	ListOpenTurnRecords(ctx context.Context, locationID string) ([]domain.AttendanceRecord, error)

	// ListActiveRecords retrieves the open-turn records whose employees are
	// still clocked in.
	ListActiveRecords(ctx context.Context, locationID string) ([]domain.AttendanceRecord, error)

	// ListEmployeeHistory retrieves an employee's attendance at a location,
	// optionally bounded by an inclusive work-date range.
	ListEmployeeHistory(ctx context.Context, employeeID string, locationID string, fromDate, toDate *string) ([]domain.AttendanceRecord, error)
}

// AttendanceWriterSvc defines write operations for attendance data
type AttendanceWriterSvc interface {
	// ClockIn registers an employee's shift entry at a location. Fails when the
	// employee already holds an open record anywhere.
	ClockIn(ctx context.Context, locationID string, req dto.ClockInRequest, userID string) (*domain.AttendanceRecord, error)

	// ClockOut registers the shift exit for an open attendance record.
	ClockOut(ctx context.Context, recordID string, req dto.ClockOutRequest, userID string) (*domain.AttendanceRecord, error)
}

// AttendanceSvcFacade combines all attendance-related service interfaces
type AttendanceSvcFacade interface {
	AttendanceReaderSvc
	AttendanceWriterSvc
}

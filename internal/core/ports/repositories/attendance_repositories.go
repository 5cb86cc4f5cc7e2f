package repositories

import (
	"context"
	"time"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// AttendanceRepository defines persistence operations for attendance records.
type AttendanceRepository interface {
	// SaveAttendance inserts a new clock-in record.
	SaveAttendance(ctx context.Context, record domain.AttendanceRecord) error

	// SetClockOut stamps the clock-out fields on an open record.
	SetClockOut(ctx context.Context, recordID string, clockOutAt time.Time, clockOutBy string, notes string) (*domain.AttendanceRecord, error)

	// FindOpenByEmployee returns the employee's open record (no clock-out)
	// regardless of location, or apperrors.ErrNotFound when there is none.
	FindOpenByEmployee(ctx context.Context, employeeID string) (*domain.AttendanceRecord, error)

	// FindAttendanceByID returns a single record with its display joins.
	FindAttendanceByID(ctx context.Context, recordID string) (*domain.AttendanceRecord, error)

	// ListForWorkDate returns all records of a location for a logical work
	// date, newest clock-in first.
	ListForWorkDate(ctx context.Context, locationID, workDate string) ([]domain.AttendanceRecord, error)

	// ListEmployeeHistory returns an employee's records, optionally limited
	// to a location and a work-date range, newest first.
	ListEmployeeHistory(ctx context.Context, employeeID, locationID string, from, to *string) ([]domain.AttendanceRecord, error)
}

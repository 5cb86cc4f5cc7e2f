package dto

import (
	"time"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// --- Attendance DTOs ---

// ClockInRequest defines data for registering an employee's shift entry.
type ClockInRequest struct {
	EmployeeID string `json:"employeeID" binding:"required,uuid"`
	RoleID     string `json:"roleID" binding:"required,uuid"`
	Notes      string `json:"notes"`
}

// ClockOutRequest defines data for registering an employee's shift exit.
type ClockOutRequest struct {
	Notes string `json:"notes"`
}

// AttendanceResponse defines data returned for an attendance record.
type AttendanceResponse struct {
	RecordID         string     `json:"recordID"`
	EmployeeID       string     `json:"employeeID"`
	EmployeeName     string     `json:"employeeName"`
	EmployeeDocument string     `json:"employeeDocument"`
	LocationID       string     `json:"locationID"`
	LocationName     string     `json:"locationName"`
	RoleName         string     `json:"roleName"`
	WorkDate         string     `json:"workDate"`
	ClockInAt        time.Time  `json:"clockInAt"`
	ClockOutAt       *time.Time `json:"clockOutAt,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// ToAttendanceResponse converts domain.AttendanceRecord to DTO.
func ToAttendanceResponse(r *domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		RecordID:         r.RecordID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		EmployeeDocument: r.EmployeeDocument,
		LocationID:       r.LocationID,
		LocationName:     r.LocationName,
		RoleName:         r.RoleName,
		WorkDate:         r.WorkDate,
		ClockInAt:        r.ClockInAt,
		ClockOutAt:       r.ClockOutAt,
		Notes:            r.Notes,
	}
}

// ListAttendanceResponse wraps a list of attendance records.
type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
}

// ToListAttendanceResponse converts a slice of domain.AttendanceRecord to DTO.
func ToListAttendanceResponse(rs []domain.AttendanceRecord) ListAttendanceResponse {
	list := make([]AttendanceResponse, len(rs))
	for i, r := range rs {
		list[i] = ToAttendanceResponse(&r)
	}
	return ListAttendanceResponse{Records: list}
}

package domain

import "time"

// AttendanceRecord is a single clock-in (and eventually clock-out) of an
// employee at a location. WorkDate is the logical work day assigned at
// clock-in time, which may differ from the calendar date of ClockInAt for
// shifts that start after midnight.
type AttendanceRecord struct {
	RecordID   string     `json:"recordID" db:"record_id"` // Primary Key (UUID)
	EmployeeID string     `json:"employeeID" db:"employee_id"`
	LocationID string     `json:"locationID" db:"location_id"`
	RoleID     string     `json:"roleID" db:"role_id"`
	WorkDate   string     `json:"workDate" db:"work_date"` // YYYY-MM-DD
	ClockInAt  time.Time  `json:"clockInAt" db:"clock_in_at"`
	ClockOutAt *time.Time `json:"clockOutAt" db:"clock_out_at"`
	ClockInBy  string     `json:"clockInBy" db:"clock_in_by"`   // UserID that registered the entry
	ClockOutBy *string    `json:"clockOutBy" db:"clock_out_by"` // UserID that registered the exit
	Notes      string     `json:"notes" db:"notes"`

	// Denormalized display fields populated by repository joins.
	EmployeeName     string `json:"employeeName" db:"employee_name"`
	EmployeeDocument string `json:"employeeDocument" db:"employee_document"`
	RoleName         string `json:"roleName" db:"role_name"`
	LocationName     string `json:"locationName" db:"location_name"`
}

// IsOpen reports whether the employee is still clocked in on this record.
func (r AttendanceRecord) IsOpen() bool {
	return r.ClockOutAt == nil
}

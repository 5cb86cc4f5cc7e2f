package domain

import "time"

// Absence records that an employee did not show up for a work day.
type Absence struct {
	AbsenceID    string    `json:"absenceID" db:"absence_id"` // Primary Key (UUID)
	EmployeeID   string    `json:"employeeID" db:"employee_id"`
	LocationID   string    `json:"locationID" db:"location_id"`
	ReasonID     string    `json:"reasonID" db:"reason_id"`
	WorkDate     string    `json:"workDate" db:"work_date"` // YYYY-MM-DD
	Notes        string    `json:"notes" db:"notes"`
	RegisteredBy string    `json:"registeredBy" db:"registered_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Denormalized display fields populated by repository joins.
	EmployeeName     string `json:"employeeName" db:"employee_name"`
	EmployeeDocument string `json:"employeeDocument" db:"employee_document"`
	ReasonName       string `json:"reasonName" db:"reason_name"`
}

// AbsenceReason is a catalog entry explaining an absence.
type AbsenceReason struct {
	ReasonID              string `json:"reasonID" db:"reason_id"`
	Name                  string `json:"name" db:"name"`
	RequiresJustification bool   `json:"requiresJustification" db:"requires_justification"`
	IsActive              bool   `json:"isActive" db:"is_active"`
}

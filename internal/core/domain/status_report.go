package domain

import "time"

// StatusReport is an on-demand mid-turn snapshot of a location, persisted
// with a sequential per-day report number for printing.
type StatusReport struct {
	ReportID     string    `json:"reportID" db:"report_id"` // Primary Key (UUID)
	LocationID   string    `json:"locationID" db:"location_id"`
	ReportNumber string    `json:"reportNumber" db:"report_number"` // LOC<prefix>-YYYYMMDD-NNN
	WorkDate     string    `json:"workDate" db:"work_date"`
	ReportTime   string    `json:"reportTime" db:"report_time"` // HH:MM
	Notes        string    `json:"notes" db:"notes"`
	GeneratedBy  string    `json:"generatedBy" db:"generated_by"`
	Report       []byte    `json:"report" db:"report"` // snapshot JSON
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// TurnNote is the running free-text note of the active turn, one row per
// (location, work date), overwritten in place as the turn progresses.
type TurnNote struct {
	LocationID string    `json:"locationID" db:"location_id"`
	WorkDate   string    `json:"workDate" db:"work_date"`
	Content    string    `json:"content" db:"content"`
	UpdatedBy  string    `json:"updatedBy" db:"updated_by"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

package dto

import (
	"encoding/json"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// --- Status report DTOs ---

// GenerateStatusReportRequest defines data for generating a mid-turn status report.
type GenerateStatusReportRequest struct {
	Notes string `json:"notes"`
}

// StatusReportResponse defines data returned for a status report.
type StatusReportResponse struct {
	ReportID     string          `json:"reportID"`
	LocationID   string          `json:"locationID"`
	ReportNumber string          `json:"reportNumber"`
	WorkDate     string          `json:"workDate"`
	ReportTime   string          `json:"reportTime"`
	Notes        string          `json:"notes,omitempty"`
	GeneratedBy  string          `json:"generatedBy"`
	Report       json.RawMessage `json:"report,omitempty"`
}

// ToStatusReportResponse converts domain.StatusReport to DTO.
func ToStatusReportResponse(r *domain.StatusReport) StatusReportResponse {
	return StatusReportResponse{
		ReportID:     r.ReportID,
		LocationID:   r.LocationID,
		ReportNumber: r.ReportNumber,
		WorkDate:     r.WorkDate,
		ReportTime:   r.ReportTime,
		Notes:        r.Notes,
		GeneratedBy:  r.GeneratedBy,
		Report:       json.RawMessage(r.Report),
	}
}

// ListStatusReportsResponse wraps a list of status reports.
type ListStatusReportsResponse struct {
	Reports []StatusReportResponse `json:"reports"`
}

// ToListStatusReportsResponse converts a slice of domain.StatusReport to DTO.
func ToListStatusReportsResponse(rs []domain.StatusReport) ListStatusReportsResponse {
	list := make([]StatusReportResponse, len(rs))
	for i, r := range rs {
		list[i] = ToStatusReportResponse(&r)
	}
	return ListStatusReportsResponse{Reports: list}
}

package dto

import (
	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// --- Absence DTOs ---

// CreateAbsenceRequest defines data for registering an absence.
type CreateAbsenceRequest struct {
	EmployeeID string `json:"employeeID" binding:"required,uuid"`
	ReasonID   string `json:"reasonID" binding:"required,uuid"`
	Notes      string `json:"notes"`
}

// AbsenceResponse defines data returned for an absence.
type AbsenceResponse struct {
	AbsenceID    string `json:"absenceID"`
	EmployeeID   string `json:"employeeID"`
	EmployeeName string `json:"employeeName"`
	LocationID   string `json:"locationID"`
	ReasonID     string `json:"reasonID"`
	ReasonName   string `json:"reasonName"`
	WorkDate     string `json:"workDate"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ToAbsenceResponse converts domain.Absence to DTO.
func ToAbsenceResponse(a *domain.Absence) AbsenceResponse {
	return AbsenceResponse{
		AbsenceID:    a.AbsenceID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		LocationID:   a.LocationID,
		ReasonID:     a.ReasonID,
		ReasonName:   a.ReasonName,
		WorkDate:     a.WorkDate,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ListAbsencesResponse wraps a list of absences.
type ListAbsencesResponse struct {
	Absences []AbsenceResponse `json:"absences"`
	Count    int               `json:"count"`
}

// ToListAbsencesResponse converts a slice of domain.Absence to DTO.
func ToListAbsencesResponse(as []domain.Absence) ListAbsencesResponse {
	list := make([]AbsenceResponse, len(as))
	for i, a := range as {
		list[i] = ToAbsenceResponse(&a)
	}
	return ListAbsencesResponse{Absences: list, Count: len(list)}
}

// AbsenceReasonResponse defines data returned for an absence reason.
type AbsenceReasonResponse struct {
	ReasonID              string `json:"reasonID"`
	Name                  string `json:"name"`
	RequiresJustification bool   `json:"requiresJustification"`
}

// ToAbsenceReasonResponse converts domain.AbsenceReason to DTO.
func ToAbsenceReasonResponse(r *domain.AbsenceReason) AbsenceReasonResponse {
	return AbsenceReasonResponse{ReasonID: r.ReasonID, Name: r.Name, RequiresJustification: r.RequiresJustification}
}

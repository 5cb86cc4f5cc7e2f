package dto

import (
	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// --- Turn DTOs ---

// TurnInfoResponse defines the current turn state for a location.
type TurnInfoResponse struct {
	WorkDate   string  `json:"workDate"`
	Turn       *string `json:"turn"`
	TurnNumber int     `json:"turnNumber"`
	Message    string  `json:"message,omitempty"`
	Closable   bool    `json:"closable"`
	Degraded   bool    `json:"degraded,omitempty"`
}

// ToTurnInfoResponse converts domain.TurnInfo to DTO.
func ToTurnInfoResponse(workDate string, info domain.TurnInfo) TurnInfoResponse {
	var turn *string
	if info.Turn != nil {
		s := string(*info.Turn)
		turn = &s
	}
	return TurnInfoResponse{
		WorkDate:   workDate,
		Turn:       turn,
		TurnNumber: info.TurnNumber,
		Message:    info.Message,
		Closable:   info.Closable,
		Degraded:   info.Degraded,
	}
}

// SaveTurnNoteRequest defines data for saving the shared turn note.
type SaveTurnNoteRequest struct {
	Content string `json:"content"`
}

// TurnNoteResponse defines data returned for the shared turn note.
type TurnNoteResponse struct {
	LocationID string `json:"locationID"`
	WorkDate   string `json:"workDate"`
	Content    string `json:"content"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// ToTurnNoteResponse converts domain.TurnNote to DTO.
func ToTurnNoteResponse(n *domain.TurnNote) TurnNoteResponse {
	resp := TurnNoteResponse{
		LocationID: n.LocationID,
		WorkDate:   n.WorkDate,
		Content:    n.Content,
	}
	if !n.UpdatedAt.IsZero() {
		resp.UpdatedAt = n.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

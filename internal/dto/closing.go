package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// --- Closing DTOs ---

// CloseTurnRequest defines data for committing a turn closing. Turn is
// optional: when omitted the server derives the open turn, but a
// post-midnight second-turn close must name it explicitly.
type CloseTurnRequest struct {
	Turn         *string `json:"turn" binding:"omitempty,oneof=primer_turno segundo_turno"`
	GeneralNotes string  `json:"generalNotes"`
}

// CloseDayRequest defines data for committing a day closing.
type CloseDayRequest struct {
	GeneralNotes string `json:"generalNotes"`
}

// TurnClosingResponse defines data returned for a committed turn closing.
type TurnClosingResponse struct {
	ClosingID    string          `json:"closingID"`
	LocationID   string          `json:"locationID"`
	LocationName string          `json:"locationName,omitempty"`
	WorkDate     string          `json:"workDate"`
	Turn         string          `json:"turn"`
	ClosedAt     time.Time       `json:"closedAt"`
	TotalVoucher decimal.Decimal `json:"totalVoucher"`
	GeneralNotes string          `json:"generalNotes,omitempty"`
	ClosedBy     string          `json:"closedBy"`
	Report       json.RawMessage `json:"report,omitempty"`
}

// ToTurnClosingResponse converts domain.TurnClosing to DTO.
func ToTurnClosingResponse(c *domain.TurnClosing) TurnClosingResponse {
	return TurnClosingResponse{
		ClosingID:    c.ClosingID,
		LocationID:   c.LocationID,
		LocationName: c.LocationName,
		WorkDate:     c.WorkDate,
		Turn:         string(c.Turn),
		ClosedAt:     c.ClosedAt,
		TotalVoucher: c.TotalVoucher,
		GeneralNotes: c.GeneralNotes,
		ClosedBy:     c.ClosedBy,
		Report:       json.RawMessage(c.Report),
	}
}

// ListTurnClosingsResponse wraps a list of turn closings.
type ListTurnClosingsResponse struct {
	Closings []TurnClosingResponse `json:"closings"`
}

// ToListTurnClosingsResponse converts a slice of domain.TurnClosing to DTO.
func ToListTurnClosingsResponse(cs []domain.TurnClosing) ListTurnClosingsResponse {
	list := make([]TurnClosingResponse, len(cs))
	for i, c := range cs {
		list[i] = ToTurnClosingResponse(&c)
	}
	return ListTurnClosingsResponse{Closings: list}
}

// DayClosingResponse defines data returned for a committed day closing.
type DayClosingResponse struct {
	ClosingID    string          `json:"closingID"`
	LocationID   string          `json:"locationID"`
	LocationName string          `json:"locationName,omitempty"`
	WorkDate     string          `json:"workDate"`
	ClosedAt     time.Time       `json:"closedAt"`
	TotalVoucher decimal.Decimal `json:"totalVoucher"`
	GeneralNotes string          `json:"generalNotes,omitempty"`
	ClosedBy     string          `json:"closedBy"`
	Report       json.RawMessage `json:"report,omitempty"`
}

// ToDayClosingResponse converts domain.DayClosing to DTO.
func ToDayClosingResponse(c *domain.DayClosing) DayClosingResponse {
	return DayClosingResponse{
		ClosingID:    c.ClosingID,
		LocationID:   c.LocationID,
		LocationName: c.LocationName,
		WorkDate:     c.WorkDate,
		ClosedAt:     c.ClosedAt,
		TotalVoucher: c.TotalVoucher,
		GeneralNotes: c.GeneralNotes,
		ClosedBy:     c.ClosedBy,
		Report:       json.RawMessage(c.Report),
	}
}

// ListDayClosingsResponse wraps a list of day closings.
type ListDayClosingsResponse struct {
	Closings []DayClosingResponse `json:"closings"`
}

// ToListDayClosingsResponse converts a slice of domain.DayClosing to DTO.
func ToListDayClosingsResponse(cs []domain.DayClosing) ListDayClosingsResponse {
	list := make([]DayClosingResponse, len(cs))
	for i, c := range cs {
		list[i] = ToDayClosingResponse(&c)
	}
	return ListDayClosingsResponse{Closings: list}
}

// ClosingPreviewResponse defines the aggregated snapshot shown before committing a closing.
type ClosingPreviewResponse struct {
	TurnInfo TurnInfoResponse       `json:"turnInfo"`
	Snapshot domain.ClosingSnapshot `json:"snapshot"`
}

package dto

import (
	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// --- Location DTOs ---

// LocationResponse defines data returned for a location.
type LocationResponse struct {
	LocationID string `json:"locationID"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	IsActive   bool   `json:"isActive"`
}

// ToLocationResponse converts domain.Location to DTO.
func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		LocationID: l.LocationID,
		Name:       l.Name,
		Address:    l.Address,
		IsActive:   l.IsActive,
	}
}

// ListLocationsResponse wraps a list of locations.
type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// ToListLocationsResponse converts a slice of domain.Location to DTO.
func ToListLocationsResponse(ls []domain.Location) ListLocationsResponse {
	list := make([]LocationResponse, len(ls))
	for i, l := range ls {
		list[i] = ToLocationResponse(&l)
	}
	return ListLocationsResponse{Locations: list}
}

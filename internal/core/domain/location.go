package domain

import "time"

// Location represents a physical store or restaurant where shifts are worked.
type Location struct {
	LocationID string    `json:"locationID" db:"location_id"` // Primary Key (UUID)
	Name       string    `json:"name" db:"name"`
	Address    string    `json:"address" db:"address"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// UserLocation represents the assignment of an application user to a location.
type UserLocation struct {
	UserID     string    `json:"userID" db:"user_id"`
	LocationID string    `json:"locationID" db:"location_id"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	AssignedAt time.Time `json:"assignedAt" db:"assigned_at"`
}

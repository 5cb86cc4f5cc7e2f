package dto

import (
	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// --- Employee DTOs ---

// CreateEmployeeRequest defines data for registering an employee.
type CreateEmployeeRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Document  string `json:"document" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// UpdateEmployeeRequest defines data for updating an employee.
type UpdateEmployeeRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	IsActive  *bool   `json:"isActive"`
}

// EmployeeResponse defines data returned for an employee.
type EmployeeResponse struct {
	EmployeeID string `json:"employeeID"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	FullName   string `json:"fullName"`
	Document   string `json:"document"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	IsActive   bool   `json:"isActive"`
}

// ToEmployeeResponse converts domain.Employee to DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		FullName:   e.FullName(),
		Document:   e.Document,
		Phone:      e.Phone,
		Email:      e.Email,
		IsActive:   e.IsActive,
	}
}

// WorkRoleResponse defines data returned for a work role.
type WorkRoleResponse struct {
	RoleID string `json:"roleID"`
	Name   string `json:"name"`
}

// ToWorkRoleResponse converts domain.WorkRole to DTO.
func ToWorkRoleResponse(r *domain.WorkRole) WorkRoleResponse {
	return WorkRoleResponse{RoleID: r.RoleID, Name: r.Name}
}

package domain

import "time"

// Employee represents a member of staff who clocks in and out of shifts.
// Employees are global: they are not tied to a single location.
type Employee struct {
	EmployeeID string    `json:"employeeID" db:"employee_id"` // Primary Key (UUID)
	FirstName  string    `json:"firstName" db:"first_name"`
	LastName   string    `json:"lastName" db:"last_name"`
	Document   string    `json:"document" db:"document"` // national ID / document number
	Phone      string    `json:"phone" db:"phone"`
	Email      string    `json:"email" db:"email"`
	HiredAt    time.Time `json:"hiredAt" db:"hired_at"`
	IsActive   bool      `json:"isActive" db:"is_active"`
}

// FullName returns the employee's display name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// WorkRole is the role an employee performs during a shift (cook, cashier, ...).
type WorkRole struct {
	RoleID   string `json:"roleID" db:"role_id"`
	Name     string `json:"name" db:"name"`
	IsActive bool   `json:"isActive" db:"is_active"`
}

package repositories

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employees and the
// work-role catalog.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees returns employees ordered by last name, first name.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	ListWorkRoles(ctx context.Context) ([]domain.WorkRole, error)
}

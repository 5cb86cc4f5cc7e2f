package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/dto"
)

// employeeService manages the employee registry and the work-role catalog.
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

// Ensure employeeService implements the EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	now := time.Now()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Document:   req.Document,
		Phone:      req.Phone,
		Email:      req.Email,
		HiredAt:    now,
		IsActive:   true,
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("Ya existe un empleado con el documento %s.", req.Document))
		}
		s.LogError(ctx, err, "Failed to save employee",
			slog.String("document", req.Document))
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("created_by", userID))

	return &employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("employee %s not found", employeeID))
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee",
			slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	s.LogInfo(ctx, "Employee updated",
		slog.String("employee_id", employeeID),
		slog.String("updated_by", userID))

	return employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("employee %s not found", employeeID))
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, onlyActive bool) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if !onlyActive {
		if employees == nil {
			return []domain.Employee{}, nil
		}
		return employees, nil
	}
	active := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

func (s *employeeService) ListWorkRoles(ctx context.Context) ([]domain.WorkRole, error) {
	roles, err := s.employeeRepo.ListWorkRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work roles: %w", err)
	}
	if roles == nil {
		return []domain.WorkRole{}, nil
	}
	return roles, nil
}

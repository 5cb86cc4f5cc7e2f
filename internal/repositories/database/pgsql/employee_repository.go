package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employees.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

const employeeSelect = `
	SELECT employee_id, first_name, last_name, document, phone, email, hired_at, is_active
	FROM employees
`

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, first_name, last_name, document, phone, email, hired_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.FirstName,
		employee.LastName,
		employee.Document,
		employee.Phone,
		employee.Email,
		employee.HiredAt,
		employee.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation on document
				return apperrors.ErrDuplicate
			}
		}
		return fmt.Errorf("failed to save employee %s: %w", employee.EmployeeID, err)
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, phone = $4, email = $5, is_active = $6
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.FirstName,
		employee.LastName,
		employee.Phone,
		employee.Email,
		employee.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", employee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := employeeSelect + `
		WHERE employee_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee %s: %w", employeeID, err)
	}
	employee, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan employee %s: %w", employeeID, err)
	}
	return &employee, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := employeeSelect + `
		ORDER BY last_name, first_name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	employees, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Employee])
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) ListWorkRoles(ctx context.Context) ([]domain.WorkRole, error) {
	query := `
		SELECT role_id, name, is_active
		FROM work_roles
		WHERE is_active
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query work roles: %w", err)
	}
	roles, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.WorkRole])
	if err != nil {
		return nil, fmt.Errorf("failed to scan work roles: %w", err)
	}
	return roles, nil
}

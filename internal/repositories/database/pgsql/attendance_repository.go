package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for attendance records.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepository {
	return &PgxAttendanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AttendanceRepository = (*PgxAttendanceRepository)(nil)

// attendanceSelect joins the display columns every caller needs onto the
// base record.
const attendanceSelect = `
	SELECT ar.record_id, ar.employee_id, ar.location_id, ar.role_id,
	       to_char(ar.work_date, 'YYYY-MM-DD') AS work_date,
	       ar.clock_in_at, ar.clock_out_at, ar.clock_in_by, ar.clock_out_by, ar.notes,
	       e.first_name || ' ' || e.last_name AS employee_name,
	       e.document AS employee_document,
	       wr.name AS role_name,
	       l.name AS location_name
	FROM attendance_records ar
	JOIN employees e ON e.employee_id = ar.employee_id
	JOIN work_roles wr ON wr.role_id = ar.role_id
	JOIN locations l ON l.location_id = ar.location_id
`

func (r *PgxAttendanceRepository) SaveAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (record_id, employee_id, location_id, role_id, work_date, clock_in_at, clock_in_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		record.RecordID,
		record.EmployeeID,
		record.LocationID,
		record.RoleID,
		record.WorkDate,
		record.ClockInAt,
		record.ClockInBy,
		record.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save attendance record %s: %w", record.RecordID, err)
	}
	return nil
}

func (r *PgxAttendanceRepository) SetClockOut(ctx context.Context, recordID string, clockOutAt time.Time, clockOutBy string, notes string) (*domain.AttendanceRecord, error) {
	query := `
		UPDATE attendance_records
		SET clock_out_at = $2,
		    clock_out_by = $3,
		    notes = CASE WHEN $4 <> '' THEN $4 ELSE notes END
		WHERE record_id = $1 AND clock_out_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, recordID, clockOutAt, clockOutBy, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to set clock-out on record %s: %w", recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindAttendanceByID(ctx, recordID)
}

func (r *PgxAttendanceRepository) FindOpenByEmployee(ctx context.Context, employeeID string) (*domain.AttendanceRecord, error) {
	query := attendanceSelect + `
		WHERE ar.employee_id = $1 AND ar.clock_out_at IS NULL
		ORDER BY ar.clock_in_at DESC
		LIMIT 1;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query open record for employee %s: %w", employeeID, err)
	}
	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.AttendanceRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan open record for employee %s: %w", employeeID, err)
	}
	return &record, nil
}

func (r *PgxAttendanceRepository) FindAttendanceByID(ctx context.Context, recordID string) (*domain.AttendanceRecord, error) {
	query := attendanceSelect + `
		WHERE ar.record_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance record %s: %w", recordID, err)
	}
	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.AttendanceRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan attendance record %s: %w", recordID, err)
	}
	return &record, nil
}

func (r *PgxAttendanceRepository) ListForWorkDate(ctx context.Context, locationID, workDate string) ([]domain.AttendanceRecord, error) {
	query := attendanceSelect + `
		WHERE ar.location_id = $1 AND ar.work_date = $2
		ORDER BY ar.clock_in_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AttendanceRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance records: %w", err)
	}
	return records, nil
}

func (r *PgxAttendanceRepository) ListEmployeeHistory(ctx context.Context, employeeID, locationID string, from, to *string) ([]domain.AttendanceRecord, error) {
	query := attendanceSelect + `
		WHERE ar.employee_id = $1
	`
	args := []any{employeeID}
	if locationID != "" {
		args = append(args, locationID)
		query += fmt.Sprintf(" AND ar.location_id = $%d", len(args))
	}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND ar.work_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND ar.work_date <= $%d", len(args))
	}
	query += " ORDER BY ar.clock_in_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee history: %w", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AttendanceRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee history: %w", err)
	}
	return records, nil
}

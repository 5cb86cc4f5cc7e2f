package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
)

type PgxAbsenceRepository struct {
	BaseRepository
}

// newPgxAbsenceRepository creates a new repository for absences.
func newPgxAbsenceRepository(pool *pgxpool.Pool) portsrepo.AbsenceRepository {
	return &PgxAbsenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AbsenceRepository = (*PgxAbsenceRepository)(nil)

const absenceSelect = `
	SELECT a.absence_id, a.employee_id, a.location_id, a.reason_id,
	       to_char(a.work_date, 'YYYY-MM-DD') AS work_date,
	       a.notes, a.registered_by, a.created_at,
	       e.first_name || ' ' || e.last_name AS employee_name,
	       e.document AS employee_document,
	       ab.name AS reason_name
	FROM absences a
	JOIN employees e ON e.employee_id = a.employee_id
	JOIN absence_reasons ab ON ab.reason_id = a.reason_id
`

func (r *PgxAbsenceRepository) SaveAbsence(ctx context.Context, absence domain.Absence) error {
	query := `
		INSERT INTO absences (absence_id, employee_id, location_id, reason_id, work_date, notes, registered_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		absence.AbsenceID,
		absence.EmployeeID,
		absence.LocationID,
		absence.ReasonID,
		absence.WorkDate,
		absence.Notes,
		absence.RegisteredBy,
		absence.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save absence %s: %w", absence.AbsenceID, err)
	}
	return nil
}

func (r *PgxAbsenceRepository) ListForWorkDate(ctx context.Context, locationID, workDate string) ([]domain.Absence, error) {
	query := absenceSelect + `
		WHERE a.location_id = $1 AND a.work_date = $2
		ORDER BY a.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	absences, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Absence])
	if err != nil {
		return nil, fmt.Errorf("failed to scan absences: %w", err)
	}
	return absences, nil
}

func (r *PgxAbsenceRepository) DeleteAbsence(ctx context.Context, absenceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM absences WHERE absence_id = $1;`, absenceID)
	if err != nil {
		return fmt.Errorf("failed to delete absence %s: %w", absenceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAbsenceRepository) ListAbsenceReasons(ctx context.Context) ([]domain.AbsenceReason, error) {
	query := `
		SELECT reason_id, name, requires_justification, is_active
		FROM absence_reasons
		WHERE is_active
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query absence reasons: %w", err)
	}
	reasons, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AbsenceReason])
	if err != nil {
		return nil, fmt.Errorf("failed to scan absence reasons: %w", err)
	}
	return reasons, nil
}

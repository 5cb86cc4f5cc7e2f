package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
)

type PgxStatusReportRepository struct {
	BaseRepository
}

// newPgxStatusReportRepository creates a new repository for status reports.
func newPgxStatusReportRepository(pool *pgxpool.Pool) portsrepo.StatusReportRepository {
	return &PgxStatusReportRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StatusReportRepository = (*PgxStatusReportRepository)(nil)

const statusReportSelect = `
	SELECT report_id, location_id, report_number,
	       to_char(work_date, 'YYYY-MM-DD') AS work_date,
	       report_time, notes, generated_by, report, created_at
	FROM status_reports
`

func (r *PgxStatusReportRepository) SaveStatusReport(ctx context.Context, report domain.StatusReport) error {
	query := `
		INSERT INTO status_reports (report_id, location_id, report_number, work_date, report_time, notes, generated_by, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		report.ReportID,
		report.LocationID,
		report.ReportNumber,
		report.WorkDate,
		report.ReportTime,
		report.Notes,
		report.GeneratedBy,
		report.Report,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save status report %s: %w", report.ReportID, err)
	}
	return nil
}

func (r *PgxStatusReportRepository) FindLastReportNumber(ctx context.Context, locationID, workDate string) (string, error) {
	query := `
		SELECT report_number
		FROM status_reports
		WHERE location_id = $1 AND work_date = $2
		ORDER BY report_number DESC
		LIMIT 1;
	`
	var number string
	err := r.Pool.QueryRow(ctx, query, locationID, workDate).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to query last report number: %w", err)
	}
	return number, nil
}

func (r *PgxStatusReportRepository) ListStatusReports(ctx context.Context, locationID string, from, to *string) ([]domain.StatusReport, error) {
	query := statusReportSelect + `
		WHERE location_id = $1
	`
	args := []any{locationID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND work_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND work_date <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query status reports: %w", err)
	}
	reports, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.StatusReport])
	if err != nil {
		return nil, fmt.Errorf("failed to scan status reports: %w", err)
	}
	return reports, nil
}

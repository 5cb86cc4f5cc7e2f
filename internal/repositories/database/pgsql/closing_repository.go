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

type PgxClosingRepository struct {
	BaseRepository
}

// newPgxClosingRepository creates a new repository for turn and day closings.
func newPgxClosingRepository(pool *pgxpool.Pool) portsrepo.ClosingRepository {
	return &PgxClosingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClosingRepository = (*PgxClosingRepository)(nil)

const turnClosingSelect = `
	SELECT tc.closing_id, tc.location_id,
	       to_char(tc.work_date, 'YYYY-MM-DD') AS work_date,
	       tc.turn, tc.closed_at, tc.total_voucher, tc.general_notes, tc.closed_by, tc.report,
	       l.name AS location_name
	FROM turn_closings tc
	JOIN locations l ON l.location_id = tc.location_id
`

const dayClosingSelect = `
	SELECT dc.closing_id, dc.location_id,
	       to_char(dc.work_date, 'YYYY-MM-DD') AS work_date,
	       dc.closed_at, dc.total_voucher, dc.general_notes, dc.closed_by, dc.report,
	       l.name AS location_name
	FROM day_closings dc
	JOIN locations l ON l.location_id = dc.location_id
`

func (r *PgxClosingRepository) SaveTurnClosing(ctx context.Context, closing domain.TurnClosing) error {
	query := `
		INSERT INTO turn_closings (closing_id, location_id, work_date, turn, closed_at, total_voucher, general_notes, closed_by, report)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		closing.ClosingID,
		closing.LocationID,
		closing.WorkDate,
		closing.Turn,
		closing.ClosedAt,
		closing.TotalVoucher,
		closing.GeneralNotes,
		closing.ClosedBy,
		closing.Report,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewAlreadyClosedError(
					fmt.Sprintf("turn %s already closed for %s on %s", closing.Turn, closing.LocationID, closing.WorkDate))
			}
		}
		return fmt.Errorf("failed to save turn closing %s: %w", closing.ClosingID, err)
	}
	return nil
}

func (r *PgxClosingRepository) ListTurnClosings(ctx context.Context, locationID, workDate string) ([]domain.TurnClosing, error) {
	query := turnClosingSelect + `
		WHERE tc.location_id = $1 AND tc.work_date = $2
		ORDER BY tc.closed_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query turn closings: %w", err)
	}
	closings, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.TurnClosing])
	if err != nil {
		return nil, fmt.Errorf("failed to scan turn closings: %w", err)
	}
	return closings, nil
}

func (r *PgxClosingRepository) FindLastTurnClosing(ctx context.Context, locationID, workDate string) (*domain.TurnClosing, error) {
	query := turnClosingSelect + `
		WHERE tc.location_id = $1 AND tc.work_date = $2
		ORDER BY tc.closed_at DESC
		LIMIT 1;
	`
	rows, err := r.Pool.Query(ctx, query, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query last turn closing: %w", err)
	}
	closing, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.TurnClosing])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan last turn closing: %w", err)
	}
	return &closing, nil
}

func (r *PgxClosingRepository) FindTurnClosingByID(ctx context.Context, closingID string) (*domain.TurnClosing, error) {
	query := turnClosingSelect + `
		WHERE tc.closing_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, closingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query turn closing %s: %w", closingID, err)
	}
	closing, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.TurnClosing])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan turn closing %s: %w", closingID, err)
	}
	return &closing, nil
}

func (r *PgxClosingRepository) ListTurnClosingsRange(ctx context.Context, locationID string, from, to *string) ([]domain.TurnClosing, error) {
	query := turnClosingSelect + `
		WHERE tc.location_id = $1
	`
	args := []any{locationID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND tc.work_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND tc.work_date <= $%d", len(args))
	}
	query += " ORDER BY tc.work_date DESC, tc.closed_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query turn closings range: %w", err)
	}
	closings, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.TurnClosing])
	if err != nil {
		return nil, fmt.Errorf("failed to scan turn closings range: %w", err)
	}
	return closings, nil
}

func (r *PgxClosingRepository) SaveDayClosing(ctx context.Context, closing domain.DayClosing) error {
	query := `
		INSERT INTO day_closings (closing_id, location_id, work_date, closed_at, total_voucher, general_notes, closed_by, report)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		closing.ClosingID,
		closing.LocationID,
		closing.WorkDate,
		closing.ClosedAt,
		closing.TotalVoucher,
		closing.GeneralNotes,
		closing.ClosedBy,
		closing.Report,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewAlreadyClosedError(
					fmt.Sprintf("day already closed for %s on %s", closing.LocationID, closing.WorkDate))
			}
		}
		return fmt.Errorf("failed to save day closing %s: %w", closing.ClosingID, err)
	}
	return nil
}

func (r *PgxClosingRepository) FindDayClosing(ctx context.Context, locationID, workDate string) (*domain.DayClosing, error) {
	query := dayClosingSelect + `
		WHERE dc.location_id = $1 AND dc.work_date = $2;
	`
	rows, err := r.Pool.Query(ctx, query, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query day closing: %w", err)
	}
	closing, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.DayClosing])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan day closing: %w", err)
	}
	return &closing, nil
}

func (r *PgxClosingRepository) ListDayClosingsRange(ctx context.Context, locationID string, from, to *string) ([]domain.DayClosing, error) {
	query := dayClosingSelect + `
		WHERE dc.location_id = $1
	`
	args := []any{locationID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND dc.work_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND dc.work_date <= $%d", len(args))
	}
	query += " ORDER BY dc.work_date DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query day closings range: %w", err)
	}
	closings, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.DayClosing])
	if err != nil {
		return nil, fmt.Errorf("failed to scan day closings range: %w", err)
	}
	return closings, nil
}

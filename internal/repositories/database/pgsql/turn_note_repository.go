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

type PgxTurnNoteRepository struct {
	BaseRepository
}

// newPgxTurnNoteRepository creates a new repository for turn notes.
func newPgxTurnNoteRepository(pool *pgxpool.Pool) portsrepo.TurnNoteRepository {
	return &PgxTurnNoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TurnNoteRepository = (*PgxTurnNoteRepository)(nil)

// SaveTurnNote upserts the single note row of a location and work date.
func (r *PgxTurnNoteRepository) SaveTurnNote(ctx context.Context, note domain.TurnNote) error {
	query := `
		INSERT INTO turn_notes (location_id, work_date, content, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (location_id, work_date) DO UPDATE SET
			content = EXCLUDED.content,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		note.LocationID,
		note.WorkDate,
		note.Content,
		note.UpdatedBy,
		note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save turn note for %s on %s: %w", note.LocationID, note.WorkDate, err)
	}
	return nil
}

func (r *PgxTurnNoteRepository) FindTurnNote(ctx context.Context, locationID, workDate string) (*domain.TurnNote, error) {
	query := `
		SELECT location_id,
		       to_char(work_date, 'YYYY-MM-DD') AS work_date,
		       content, updated_by, updated_at
		FROM turn_notes
		WHERE location_id = $1 AND work_date = $2;
	`
	rows, err := r.Pool.Query(ctx, query, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query turn note: %w", err)
	}
	note, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.TurnNote])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan turn note: %w", err)
	}
	return &note, nil
}

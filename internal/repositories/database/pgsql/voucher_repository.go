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

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for vouchers.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepository {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VoucherRepository = (*PgxVoucherRepository)(nil)

const voucherSelect = `
	SELECT v.voucher_id, v.employee_id, v.location_id, v.reason_id,
	       to_char(v.work_date, 'YYYY-MM-DD') AS work_date,
	       v.amount, v.concept, v.registered_by, v.created_at,
	       e.first_name || ' ' || e.last_name AS employee_name,
	       e.document AS employee_document,
	       vr.name AS reason_name
	FROM vouchers v
	JOIN employees e ON e.employee_id = v.employee_id
	JOIN voucher_reasons vr ON vr.reason_id = v.reason_id
`

func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	query := `
		INSERT INTO vouchers (voucher_id, employee_id, location_id, reason_id, work_date, amount, concept, registered_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		voucher.VoucherID,
		voucher.EmployeeID,
		voucher.LocationID,
		voucher.ReasonID,
		voucher.WorkDate,
		voucher.Amount,
		voucher.Concept,
		voucher.RegisteredBy,
		voucher.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save voucher %s: %w", voucher.VoucherID, err)
	}
	return nil
}

func (r *PgxVoucherRepository) ListForWorkDate(ctx context.Context, locationID, workDate string) ([]domain.Voucher, error) {
	query := voucherSelect + `
		WHERE v.location_id = $1 AND v.work_date = $2
		ORDER BY v.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, locationID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query vouchers: %w", err)
	}
	vouchers, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Voucher])
	if err != nil {
		return nil, fmt.Errorf("failed to scan vouchers: %w", err)
	}
	return vouchers, nil
}

func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vouchers WHERE voucher_id = $1;`, voucherID)
	if err != nil {
		return fmt.Errorf("failed to delete voucher %s: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVoucherRepository) ListVoucherReasons(ctx context.Context) ([]domain.VoucherReason, error) {
	query := `
		SELECT reason_id, name, deducts_payroll, is_active
		FROM voucher_reasons
		WHERE is_active
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query voucher reasons: %w", err)
	}
	reasons, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.VoucherReason])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.VoucherReason{}, nil
		}
		return nil, fmt.Errorf("failed to scan voucher reasons: %w", err)
	}
	return reasons, nil
}

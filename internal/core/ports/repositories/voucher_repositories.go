package repositories

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// VoucherRepository defines persistence operations for cash-advance vouchers.
type VoucherRepository interface {
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error

	// ListForWorkDate returns all vouchers of a location for a logical work
	// date, newest first.
	ListForWorkDate(ctx context.Context, locationID, workDate string) ([]domain.Voucher, error)

	DeleteVoucher(ctx context.Context, voucherID string) error

	ListVoucherReasons(ctx context.Context) ([]domain.VoucherReason, error)
}

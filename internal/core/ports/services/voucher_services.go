package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	"github.com/smartdom/shift_management_app/internal/dto"
)

// VoucherReaderSvc defines read operations for voucher data
type VoucherReaderSvc interface {
	// ListOpenTurnVouchers retrieves the vouchers belonging to the location's
	// current open turn window, together with their summed total.
	ListOpenTurnVouchers(ctx context.Context, locationID string) ([]domain.Voucher, decimal.Decimal, error)

	// ListVoucherReasons retrieves the active voucher reason catalog.
	ListVoucherReasons(ctx context.Context) ([]domain.VoucherReason, error)
}

// VoucherWriterSvc defines write operations for voucher data
type VoucherWriterSvc interface {
	// RegisterVoucher persists a new voucher against the current work date.
	RegisterVoucher(ctx context.Context, locationID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error)

	// DeleteVoucher removes a voucher that has not been swept into a closing.
	DeleteVoucher(ctx context.Context, voucherID string, userID string) error
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}

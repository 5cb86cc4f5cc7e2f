package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/smartdom/shift_management_app/internal/utils/money"
	"github.com/smartdom/shift_management_app/internal/utils/workday"
)

// voucherService registers cash-advance vouchers and reports the running
// total of the open turn.
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepository
	closingRepo portsrepo.ClosingRepository
	cutoverHour int
	now         func() time.Time
}

// VoucherServiceOption is a functional option for configuring the voucher service
type VoucherServiceOption func(*voucherService)

// WithVoucherClock overrides the wall clock, used by tests.
func WithVoucherClock(now func() time.Time) VoucherServiceOption {
	return func(s *voucherService) {
		s.now = now
	}
}

// NewVoucherService creates a new voucher service with the provided options
func NewVoucherService(
	voucherRepo portsrepo.VoucherRepository,
	closingRepo portsrepo.ClosingRepository,
	cutoverHour int,
	options ...VoucherServiceOption,
) portssvc.VoucherSvcFacade {
	svc := &voucherService{
		voucherRepo: voucherRepo,
		closingRepo: closingRepo,
		cutoverHour: cutoverHour,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure voucherService implements the VoucherSvcFacade interface
var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

func (s *voucherService) RegisterVoucher(ctx context.Context, locationID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationFailedError("El importe del vale debe ser mayor a cero.")
	}

	now := s.now()
	voucher := domain.Voucher{
		VoucherID:    uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		LocationID:   locationID,
		ReasonID:     req.ReasonID,
		WorkDate:     workday.WorkDate(now, s.cutoverHour),
		Amount:       req.Amount,
		Concept:      req.Concept,
		RegisteredBy: userID,
		CreatedAt:    now,
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		s.LogError(ctx, err, "Failed to save voucher",
			slog.String("employee_id", req.EmployeeID),
			slog.String("location_id", locationID))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	s.LogInfo(ctx, "Voucher registered",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("employee_id", req.EmployeeID),
		slog.String("amount", req.Amount.String()))

	return &voucher, nil
}

func (s *voucherService) ListOpenTurnVouchers(ctx context.Context, locationID string) ([]domain.Voucher, decimal.Decimal, error) {
	now := s.now()
	workDate := workday.WorkDate(now, s.cutoverHour)

	var lastClosing *time.Time
	last, err := s.closingRepo.FindLastTurnClosing(ctx, locationID, workDate)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, decimal.Zero, fmt.Errorf("failed to find last turn closing: %w", err)
		}
	} else {
		t := last.ClosedAt
		lastClosing = &t
	}

	vouchers, err := s.voucherRepo.ListForWorkDate(ctx, locationID, workDate)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to list vouchers: %w", err)
	}

	filtered := make([]domain.Voucher, 0, len(vouchers))
	amounts := make([]decimal.Decimal, 0, len(vouchers))
	for _, v := range vouchers {
		if workday.InOpenWindow(v.CreatedAt, lastClosing, s.cutoverHour) {
			filtered = append(filtered, v)
			amounts = append(amounts, v.Amount)
		}
	}
	return filtered, money.SumCents(amounts), nil
}

func (s *voucherService) DeleteVoucher(ctx context.Context, voucherID string, userID string) error {
	if err := s.voucherRepo.DeleteVoucher(ctx, voucherID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("voucher %s not found", voucherID))
		}
		s.LogError(ctx, err, "Failed to delete voucher",
			slog.String("voucher_id", voucherID))
		return fmt.Errorf("failed to delete voucher: %w", err)
	}

	s.LogInfo(ctx, "Voucher deleted",
		slog.String("voucher_id", voucherID),
		slog.String("deleted_by", userID))
	return nil
}

func (s *voucherService) ListVoucherReasons(ctx context.Context) ([]domain.VoucherReason, error) {
	reasons, err := s.voucherRepo.ListVoucherReasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list voucher reasons: %w", err)
	}
	if reasons == nil {
		return []domain.VoucherReason{}, nil
	}
	return reasons, nil
}

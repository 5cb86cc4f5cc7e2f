package dto

import (
	"github.com/shopspring/decimal"
	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// --- Voucher DTOs ---

// CreateVoucherRequest defines data for registering a voucher.
type CreateVoucherRequest struct {
	EmployeeID string          `json:"employeeID" binding:"required,uuid"`
	ReasonID   string          `json:"reasonID" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Concept    string          `json:"concept"`
}

// VoucherResponse defines data returned for a voucher.
type VoucherResponse struct {
	VoucherID    string          `json:"voucherID"`
	EmployeeID   string          `json:"employeeID"`
	EmployeeName string          `json:"employeeName"`
	LocationID   string          `json:"locationID"`
	ReasonID     string          `json:"reasonID"`
	ReasonName   string          `json:"reasonName"`
	WorkDate     string          `json:"workDate"`
	Amount       decimal.Decimal `json:"amount"`
	Concept      string          `json:"concept,omitempty"`
	CreatedAt    string          `json:"createdAt"`
}

// ToVoucherResponse converts domain.Voucher to DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:    v.VoucherID,
		EmployeeID:   v.EmployeeID,
		EmployeeName: v.EmployeeName,
		LocationID:   v.LocationID,
		ReasonID:     v.ReasonID,
		ReasonName:   v.ReasonName,
		WorkDate:     v.WorkDate,
		Amount:       v.Amount,
		Concept:      v.Concept,
		CreatedAt:    v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ListVouchersResponse wraps a list of vouchers plus the running total.
type ListVouchersResponse struct {
	Vouchers []VoucherResponse `json:"vouchers"`
	Total    decimal.Decimal   `json:"total"`
	Count    int               `json:"count"`
}

// ToListVouchersResponse converts a slice of domain.Voucher plus its total to DTO.
func ToListVouchersResponse(vs []domain.Voucher, total decimal.Decimal) ListVouchersResponse {
	list := make([]VoucherResponse, len(vs))
	for i, v := range vs {
		list[i] = ToVoucherResponse(&v)
	}
	return ListVouchersResponse{Vouchers: list, Total: total, Count: len(list)}
}

// VoucherTotalResponse carries only the summed amount of the open turn.
type VoucherTotalResponse struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// VoucherReasonResponse defines data returned for a voucher reason.
type VoucherReasonResponse struct {
	ReasonID       string `json:"reasonID"`
	Name           string `json:"name"`
	DeductsPayroll bool   `json:"deductsPayroll"`
}

// ToVoucherReasonResponse converts domain.VoucherReason to DTO.
func ToVoucherReasonResponse(r *domain.VoucherReason) VoucherReasonResponse {
	return VoucherReasonResponse{ReasonID: r.ReasonID, Name: r.Name, DeductsPayroll: r.DeductsPayroll}
}

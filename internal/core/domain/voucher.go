package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is a cash advance ("vale") handed to an employee during a turn,
// optionally deducted from payroll depending on the reason.
type Voucher struct {
	VoucherID    string          `json:"voucherID" db:"voucher_id"` // Primary Key (UUID)
	EmployeeID   string          `json:"employeeID" db:"employee_id"`
	LocationID   string          `json:"locationID" db:"location_id"`
	ReasonID     string          `json:"reasonID" db:"reason_id"`
	WorkDate     string          `json:"workDate" db:"work_date"` // YYYY-MM-DD
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Concept      string          `json:"concept" db:"concept"`
	RegisteredBy string          `json:"registeredBy" db:"registered_by"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`

	// Denormalized display fields populated by repository joins.
	EmployeeName     string `json:"employeeName" db:"employee_name"`
	EmployeeDocument string `json:"employeeDocument" db:"employee_document"`
	ReasonName       string `json:"reasonName" db:"reason_name"`
}

// VoucherReason is a catalog entry explaining why a voucher was issued.
type VoucherReason struct {
	ReasonID       string `json:"reasonID" db:"reason_id"`
	Name           string `json:"name" db:"name"`
	DeductsPayroll bool   `json:"deductsPayroll" db:"deducts_payroll"`
	IsActive       bool   `json:"isActive" db:"is_active"`
}

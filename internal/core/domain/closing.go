package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TurnClosing finalizes one turn of a work day at a location. At most one
// closing may exist per (location, work date, turn); the records visible to
// the following turn are those created strictly after ClosedAt.
type TurnClosing struct {
	ClosingID    string          `json:"closingID" db:"closing_id"` // Primary Key (UUID)
	LocationID   string          `json:"locationID" db:"location_id"`
	WorkDate     string          `json:"workDate" db:"work_date"` // YYYY-MM-DD
	Turn         TurnLabel       `json:"turn" db:"turn"`
	ClosedAt     time.Time       `json:"closedAt" db:"closed_at"`
	TotalVoucher decimal.Decimal `json:"totalVoucher" db:"total_voucher"`
	GeneralNotes string          `json:"generalNotes" db:"general_notes"`
	ClosedBy     string          `json:"closedBy" db:"closed_by"`
	Report       []byte          `json:"report" db:"report"` // snapshot JSON, kept for reprint

	LocationName string `json:"locationName" db:"location_name"`
}

// DayClosing finalizes a whole work day at a location. At most one may
// exist per (location, work date).
type DayClosing struct {
	ClosingID    string          `json:"closingID" db:"closing_id"` // Primary Key (UUID)
	LocationID   string          `json:"locationID" db:"location_id"`
	WorkDate     string          `json:"workDate" db:"work_date"` // YYYY-MM-DD
	ClosedAt     time.Time       `json:"closedAt" db:"closed_at"`
	TotalVoucher decimal.Decimal `json:"totalVoucher" db:"total_voucher"`
	GeneralNotes string          `json:"generalNotes" db:"general_notes"`
	ClosedBy     string          `json:"closedBy" db:"closed_by"`
	Report       []byte          `json:"report" db:"report"`

	LocationName string `json:"locationName" db:"location_name"`
}

// SnapshotPerson is one attendance line inside a closing snapshot.
type SnapshotPerson struct {
	RecordID   string     `json:"recordID"`
	Employee   string     `json:"employee"`
	Document   string     `json:"document"`
	Role       string     `json:"role"`
	ClockInAt  time.Time  `json:"clockInAt"`
	ClockOutAt *time.Time `json:"clockOutAt"` // nil while still on shift
	Notes      string     `json:"notes"`
}

// SnapshotVoucher is one voucher line inside a closing snapshot.
type SnapshotVoucher struct {
	VoucherID string          `json:"voucherID"`
	Employee  string          `json:"employee"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	Concept   string          `json:"concept"`
}

// SnapshotAbsence is one absence line inside a closing snapshot.
type SnapshotAbsence struct {
	AbsenceID string `json:"absenceID"`
	Employee  string `json:"employee"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

// ClosingSnapshot is the immutable aggregated report computed from the
// records of the open turn. It is a pure function of its inputs and is
// persisted verbatim on the closing record.
type ClosingSnapshot struct {
	WorkDate          string            `json:"workDate"`
	Turn              *TurnLabel        `json:"turn,omitempty"`
	TurnNumber        int               `json:"turnNumber,omitempty"`
	WindowStart       string            `json:"windowStart"` // HH:MM of last closing, or the work-day start
	Personnel         []SnapshotPerson  `json:"personnel"`
	Vouchers          []SnapshotVoucher `json:"vouchers"`
	Absences          []SnapshotAbsence `json:"absences"`
	TotalVoucher      decimal.Decimal   `json:"totalVoucher"`
	VoucherCount      int               `json:"voucherCount"`
	AbsenceCount      int               `json:"absenceCount"`
	PersonnelActive   int               `json:"personnelActive"`
	PersonnelFinished int               `json:"personnelFinished"`
}

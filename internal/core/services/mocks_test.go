package services_test

import (
	"context"
	"time"

	"github.com/smartdom/shift_management_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Shared repository mocks ---

// MockClosingRepository is a mock type for the ClosingRepository interface
type MockClosingRepository struct {
	mock.Mock
}

func (m *MockClosingRepository) SaveTurnClosing(ctx context.Context, closing domain.TurnClosing) error {
	args := m.Called(ctx, closing)
	return args.Error(0)
}

func (m *MockClosingRepository) ListTurnClosings(ctx context.Context, locationID, workDate string) ([]domain.TurnClosing, error) {
	args := m.Called(ctx, locationID, workDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TurnClosing), args.Error(1)
}

func (m *MockClosingRepository) FindLastTurnClosing(ctx context.Context, locationID, workDate string) (*domain.TurnClosing, error) {
	args := m.Called(ctx, locationID, workDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TurnClosing), args.Error(1)
}

func (m *MockClosingRepository) FindTurnClosingByID(ctx context.Context, closingID string) (*domain.TurnClosing, error) {
	args := m.Called(ctx, closingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TurnClosing), args.Error(1)
}

func (m *MockClosingRepository) ListTurnClosingsRange(ctx context.Context, locationID string, from, to *string) ([]domain.TurnClosing, error) {
	args := m.Called(ctx, locationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TurnClosing), args.Error(1)
}

func (m *MockClosingRepository) SaveDayClosing(ctx context.Context, closing domain.DayClosing) error {
	args := m.Called(ctx, closing)
	return args.Error(0)
}

func (m *MockClosingRepository) FindDayClosing(ctx context.Context, locationID, workDate string) (*domain.DayClosing, error) {
	args := m.Called(ctx, locationID, workDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayClosing), args.Error(1)
}

func (m *MockClosingRepository) ListDayClosingsRange(ctx context.Context, locationID string, from, to *string) ([]domain.DayClosing, error) {
	args := m.Called(ctx, locationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayClosing), args.Error(1)
}

// MockAttendanceRepository is a mock type for the AttendanceRepository interface
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) SaveAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceRepository) SetClockOut(ctx context.Context, recordID string, clockOutAt time.Time, clockOutBy string, notes string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, recordID, clockOutAt, clockOutBy, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindOpenByEmployee(ctx context.Context, employeeID string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceByID(ctx context.Context, recordID string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) ListForWorkDate(ctx context.Context, locationID, workDate string) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, locationID, workDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) ListEmployeeHistory(ctx context.Context, employeeID, locationID string, from, to *string) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID, locationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

// MockVoucherRepository is a mock type for the VoucherRepository interface
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) ListForWorkDate(ctx context.Context, locationID, workDate string) ([]domain.Voucher, error) {
	args := m.Called(ctx, locationID, workDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	args := m.Called(ctx, voucherID)
	return args.Error(0)
}

func (m *MockVoucherRepository) ListVoucherReasons(ctx context.Context) ([]domain.VoucherReason, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VoucherReason), args.Error(1)
}

// MockAbsenceRepository is a mock type for the AbsenceRepository interface
type MockAbsenceRepository struct {
	mock.Mock
}

func (m *MockAbsenceRepository) SaveAbsence(ctx context.Context, absence domain.Absence) error {
	args := m.Called(ctx, absence)
	return args.Error(0)
}

func (m *MockAbsenceRepository) ListForWorkDate(ctx context.Context, locationID, workDate string) ([]domain.Absence, error) {
	args := m.Called(ctx, locationID, workDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Absence), args.Error(1)
}

func (m *MockAbsenceRepository) DeleteAbsence(ctx context.Context, absenceID string) error {
	args := m.Called(ctx, absenceID)
	return args.Error(0)
}

func (m *MockAbsenceRepository) ListAbsenceReasons(ctx context.Context) ([]domain.AbsenceReason, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AbsenceReason), args.Error(1)
}

// MockStatusReportRepository is a mock type for the StatusReportRepository interface
type MockStatusReportRepository struct {
	mock.Mock
}

func (m *MockStatusReportRepository) SaveStatusReport(ctx context.Context, report domain.StatusReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockStatusReportRepository) FindLastReportNumber(ctx context.Context, locationID, workDate string) (string, error) {
	args := m.Called(ctx, locationID, workDate)
	return args.String(0), args.Error(1)
}

func (m *MockStatusReportRepository) ListStatusReports(ctx context.Context, locationID string, from, to *string) ([]domain.StatusReport, error) {
	args := m.Called(ctx, locationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusReport), args.Error(1)
}

package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClosingServiceTestSuite struct {
	suite.Suite
	mockClosingRepo    *MockClosingRepository
	mockAttendanceRepo *MockAttendanceRepository
	mockVoucherRepo    *MockVoucherRepository
	mockAbsenceRepo    *MockAbsenceRepository
}

func (suite *ClosingServiceTestSuite) SetupTest() {
	suite.mockClosingRepo = new(MockClosingRepository)
	suite.mockAttendanceRepo = new(MockAttendanceRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockAbsenceRepo = new(MockAbsenceRepository)
}

// newService wires a closing service with a frozen clock; the turn service
// shares the same clock and closing repository.
func (suite *ClosingServiceTestSuite) newService(now time.Time) portssvc.ClosingSvcFacade {
	nowFn := func() time.Time { return now }
	turnSvc := services.NewTurnService(suite.mockClosingRepo, 5, services.WithTurnClock(nowFn))
	return services.NewClosingService(
		suite.mockClosingRepo,
		suite.mockAttendanceRepo,
		suite.mockVoucherRepo,
		suite.mockAbsenceRepo,
		turnSvc,
		5,
		services.WithClosingClock(nowFn),
	)
}

func dayAt(day, hour, minute int) time.Time {
	return time.Date(2025, 6, day, hour, minute, 0, 0, time.Local)
}

func (suite *ClosingServiceTestSuite) TestCloseTurn_FirstTurnSuccess() {
	ctx := context.Background()
	now := dayAt(14, 18, 0)
	workDate := "2025-06-14"

	suite.mockClosingRepo.On("ListTurnClosings", ctx, "loc-1", workDate).
		Return([]domain.TurnClosing{}, nil).Once()
	suite.mockClosingRepo.On("FindLastTurnClosing", ctx, "loc-1", workDate).
		Return(nil, apperrors.ErrNotFound).Once()

	earlyMorning := dayAt(14, 4, 30)
	suite.mockAttendanceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.AttendanceRecord{
			{RecordID: "rec-1", EmployeeName: "Ana García", ClockInAt: dayAt(14, 9, 0)},
			{RecordID: "rec-2", EmployeeName: "Luis Pérez", ClockInAt: earlyMorning},
		}, nil).Once()
	suite.mockVoucherRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Voucher{
			{VoucherID: "v-1", Amount: decimal.NewFromFloat(10.10), CreatedAt: dayAt(14, 10, 0)},
			{VoucherID: "v-2", Amount: decimal.NewFromFloat(20.25), CreatedAt: dayAt(14, 12, 0)},
			{VoucherID: "v-3", Amount: decimal.NewFromFloat(99.99), CreatedAt: earlyMorning},
		}, nil).Once()
	suite.mockAbsenceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Absence{
			{AbsenceID: "a-1", EmployeeName: "Marta López", CreatedAt: dayAt(14, 11, 0)},
		}, nil).Once()
	suite.mockClosingRepo.On("SaveTurnClosing", ctx, mock.AnythingOfType("domain.TurnClosing")).
		Return(nil).Once()

	svc := suite.newService(now)
	closing, err := svc.CloseTurn(ctx, "loc-1", nil, "sin novedades", "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(closing)
	suite.NotEmpty(closing.ClosingID)
	suite.Equal(domain.TurnFirst, closing.Turn)
	suite.Equal(workDate, closing.WorkDate)
	suite.Equal(now, closing.ClosedAt)
	suite.Equal("sin novedades", closing.GeneralNotes)
	suite.Equal("user-1", closing.ClosedBy)
	// 10.10 + 20.25, summed in cents. The 04:30 voucher belongs to the
	// previous work day's window and is excluded.
	suite.True(closing.TotalVoucher.Equal(decimal.NewFromFloat(30.35)), "got %s", closing.TotalVoucher)

	var snapshot domain.ClosingSnapshot
	suite.Require().NoError(json.Unmarshal(closing.Report, &snapshot))
	suite.Len(snapshot.Personnel, 1)
	suite.Equal(1, snapshot.PersonnelActive)
	suite.Equal(2, snapshot.VoucherCount)
	suite.Equal(1, snapshot.AbsenceCount)
	suite.Equal("05:00", snapshot.WindowStart)

	suite.mockClosingRepo.AssertExpectations(suite.T())
}

func (suite *ClosingServiceTestSuite) TestCloseTurn_BeforeWindowRejected() {
	ctx := context.Background()
	suite.mockClosingRepo.On("ListTurnClosings", ctx, "loc-1", "2025-06-14").
		Return([]domain.TurnClosing{}, nil).Once()

	svc := suite.newService(dayAt(14, 10, 0))
	closing, err := svc.CloseTurn(ctx, "loc-1", nil, "", "user-1")

	suite.Nil(closing)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotYetEligible)
	suite.mockClosingRepo.AssertNotCalled(suite.T(), "SaveTurnClosing")
}

func (suite *ClosingServiceTestSuite) TestCloseTurn_NoOpenTurnRejected() {
	ctx := context.Background()
	// First turn already closed, before 17:00: nothing is open.
	suite.mockClosingRepo.On("ListTurnClosings", ctx, "loc-1", "2025-06-14").
		Return([]domain.TurnClosing{{Turn: domain.TurnFirst}}, nil).Once()

	svc := suite.newService(dayAt(14, 12, 0))
	closing, err := svc.CloseTurn(ctx, "loc-1", nil, "", "user-1")

	suite.Nil(closing)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClosingServiceTestSuite) TestCloseTurn_AlreadyClosedPassthrough() {
	ctx := context.Background()
	workDate := "2025-06-14"

	suite.mockClosingRepo.On("ListTurnClosings", ctx, "loc-1", workDate).
		Return([]domain.TurnClosing{}, nil).Once()
	suite.mockClosingRepo.On("FindLastTurnClosing", ctx, "loc-1", workDate).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAttendanceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.AttendanceRecord{}, nil).Once()
	suite.mockVoucherRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Voucher{}, nil).Once()
	suite.mockAbsenceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Absence{}, nil).Once()
	suite.mockClosingRepo.On("SaveTurnClosing", ctx, mock.AnythingOfType("domain.TurnClosing")).
		Return(apperrors.NewAlreadyClosedError("turn already closed for 2025-06-14")).Once()

	svc := suite.newService(dayAt(14, 18, 0))
	closing, err := svc.CloseTurn(ctx, "loc-1", nil, "", "user-1")

	suite.Nil(closing)
	suite.ErrorIs(err, apperrors.ErrAlreadyClosed)
}

func (suite *ClosingServiceTestSuite) TestCloseTurn_ExplicitSecondTurnAfterMidnight() {
	ctx := context.Background()
	// 00:45 on the 15th still belongs to the work date of the 14th.
	now := dayAt(15, 0, 45)
	workDate := "2025-06-14"

	firstClosedAt := dayAt(14, 17, 30)
	suite.mockClosingRepo.On("ListTurnClosings", ctx, "loc-1", workDate).
		Return([]domain.TurnClosing{{Turn: domain.TurnFirst, ClosedAt: firstClosedAt}}, nil).Once()
	suite.mockClosingRepo.On("FindLastTurnClosing", ctx, "loc-1", workDate).
		Return(&domain.TurnClosing{Turn: domain.TurnFirst, ClosedAt: firstClosedAt}, nil).Once()

	suite.mockAttendanceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.AttendanceRecord{
			{RecordID: "rec-1", ClockInAt: firstClosedAt.Add(-time.Minute)}, // first turn
			{RecordID: "rec-2", ClockInAt: firstClosedAt},                   // boundary, already counted
			{RecordID: "rec-3", ClockInAt: firstClosedAt.Add(time.Second)},  // second turn
		}, nil).Once()
	suite.mockVoucherRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Voucher{
			{VoucherID: "v-1", Amount: decimal.NewFromFloat(7.00), CreatedAt: dayAt(14, 16, 0)},
			{VoucherID: "v-2", Amount: decimal.NewFromFloat(5.50), CreatedAt: dayAt(14, 20, 0)},
		}, nil).Once()
	suite.mockAbsenceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Absence{}, nil).Once()
	suite.mockClosingRepo.On("SaveTurnClosing", ctx, mock.AnythingOfType("domain.TurnClosing")).
		Return(nil).Once()

	svc := suite.newService(now)
	turn := domain.TurnSecond
	closing, err := svc.CloseTurn(ctx, "loc-1", &turn, "", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.TurnSecond, closing.Turn)
	suite.Equal(workDate, closing.WorkDate)
	suite.True(closing.TotalVoucher.Equal(decimal.NewFromFloat(5.50)), "got %s", closing.TotalVoucher)

	var snapshot domain.ClosingSnapshot
	suite.Require().NoError(json.Unmarshal(closing.Report, &snapshot))
	suite.Require().Len(snapshot.Personnel, 1)
	suite.Equal("rec-3", snapshot.Personnel[0].RecordID)
	suite.Equal("17:30", snapshot.WindowStart)
}

func (suite *ClosingServiceTestSuite) TestCloseTurn_ExplicitSecondTurnWithoutFirstRejected() {
	ctx := context.Background()
	// 00:45 with no closing on the work date: the second turn cannot close
	// before the first one exists.
	suite.mockClosingRepo.On("ListTurnClosings", ctx, "loc-1", "2025-06-14").
		Return([]domain.TurnClosing{}, nil).Once()

	svc := suite.newService(dayAt(15, 0, 45))
	turn := domain.TurnSecond
	closing, err := svc.CloseTurn(ctx, "loc-1", &turn, "", "user-1")

	suite.Nil(closing)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "antes que el primero")
	suite.mockClosingRepo.AssertNotCalled(suite.T(), "SaveTurnClosing")
}

func (suite *ClosingServiceTestSuite) TestCloseTurn_ExplicitTurnConflictsWithOpenTurn() {
	ctx := context.Background()
	// 18:00 with no closing yet: the first turn is open, so naming the
	// second one is a contradiction, not an override.
	suite.mockClosingRepo.On("ListTurnClosings", ctx, "loc-1", "2025-06-14").
		Return([]domain.TurnClosing{}, nil).Once()

	svc := suite.newService(dayAt(14, 18, 0))
	turn := domain.TurnSecond
	closing, err := svc.CloseTurn(ctx, "loc-1", &turn, "", "user-1")

	suite.Nil(closing)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "no coincide")
	suite.mockClosingRepo.AssertNotCalled(suite.T(), "SaveTurnClosing")
}

func (suite *ClosingServiceTestSuite) TestPreviewClosing_DoesNotPersist() {
	ctx := context.Background()
	workDate := "2025-06-14"

	suite.mockClosingRepo.On("ListTurnClosings", ctx, "loc-1", workDate).
		Return([]domain.TurnClosing{}, nil).Once()
	suite.mockClosingRepo.On("FindLastTurnClosing", ctx, "loc-1", workDate).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAttendanceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.AttendanceRecord{}, nil).Once()
	suite.mockVoucherRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Voucher{}, nil).Once()
	suite.mockAbsenceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Absence{}, nil).Once()

	svc := suite.newService(dayAt(14, 12, 0))
	snapshot, info, err := svc.PreviewClosing(ctx, "loc-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)
	suite.Require().NotNil(info.Turn)
	suite.Equal(domain.TurnFirst, *info.Turn)
	suite.True(snapshot.TotalVoucher.IsZero())
	suite.mockClosingRepo.AssertNotCalled(suite.T(), "SaveTurnClosing")
}

func (suite *ClosingServiceTestSuite) TestCloseDay_Success() {
	ctx := context.Background()
	now := dayAt(15, 2, 0)
	workDate := "2025-06-14"

	suite.mockAttendanceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.AttendanceRecord{
			{RecordID: "rec-1", ClockInAt: dayAt(14, 9, 0), ClockOutAt: timePtr(dayAt(14, 17, 0))},
			{RecordID: "rec-2", ClockInAt: dayAt(14, 18, 0)},
		}, nil).Once()
	suite.mockVoucherRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Voucher{
			{VoucherID: "v-1", Amount: decimal.NewFromFloat(10.00), CreatedAt: dayAt(14, 10, 0)},
			{VoucherID: "v-2", Amount: decimal.NewFromFloat(5.50), CreatedAt: dayAt(14, 20, 0)},
		}, nil).Once()
	suite.mockAbsenceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Absence{}, nil).Once()
	suite.mockClosingRepo.On("SaveDayClosing", ctx, mock.AnythingOfType("domain.DayClosing")).
		Return(nil).Once()

	svc := suite.newService(now)
	closing, err := svc.CloseDay(ctx, "loc-1", "día completo", "user-1")

	suite.Require().NoError(err)
	suite.Equal(workDate, closing.WorkDate)
	// The day total covers the whole date, no window filtering.
	suite.True(closing.TotalVoucher.Equal(decimal.NewFromFloat(15.50)), "got %s", closing.TotalVoucher)

	var snapshot domain.ClosingSnapshot
	suite.Require().NoError(json.Unmarshal(closing.Report, &snapshot))
	suite.Len(snapshot.Personnel, 2)
	suite.Equal(1, snapshot.PersonnelActive)
	suite.Equal(1, snapshot.PersonnelFinished)
}

func (suite *ClosingServiceTestSuite) TestCloseDay_SingleTurnCommits() {
	ctx := context.Background()
	// A location that ran one turn still closes its day; the commit does
	// not count turn closings.
	now := dayAt(15, 2, 0)
	workDate := "2025-06-14"

	suite.mockAttendanceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.AttendanceRecord{
			{RecordID: "rec-1", ClockInAt: dayAt(14, 9, 0), ClockOutAt: timePtr(dayAt(14, 16, 0))},
		}, nil).Once()
	suite.mockVoucherRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Voucher{
			{VoucherID: "v-1", Amount: decimal.NewFromFloat(12.25), CreatedAt: dayAt(14, 10, 0)},
		}, nil).Once()
	suite.mockAbsenceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.Absence{}, nil).Once()
	suite.mockClosingRepo.On("SaveDayClosing", ctx, mock.AnythingOfType("domain.DayClosing")).
		Return(nil).Once()

	svc := suite.newService(now)
	closing, err := svc.CloseDay(ctx, "loc-1", "", "user-1")

	suite.Require().NoError(err)
	suite.Equal(workDate, closing.WorkDate)
	suite.True(closing.TotalVoucher.Equal(decimal.NewFromFloat(12.25)), "got %s", closing.TotalVoucher)
	suite.mockClosingRepo.AssertNotCalled(suite.T(), "ListTurnClosings")
	suite.mockClosingRepo.AssertExpectations(suite.T())
}

func (suite *ClosingServiceTestSuite) TestCloseDay_OutsideWindow() {
	ctx := context.Background()

	svc := suite.newService(dayAt(14, 12, 0))
	closing, err := svc.CloseDay(ctx, "loc-1", "", "user-1")

	suite.Nil(closing)
	suite.ErrorIs(err, apperrors.ErrNotYetEligible)
	suite.mockClosingRepo.AssertNotCalled(suite.T(), "SaveDayClosing")
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestClosingService(t *testing.T) {
	suite.Run(t, new(ClosingServiceTestSuite))
}

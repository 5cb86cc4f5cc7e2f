package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/core/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockAttendanceRepo *MockAttendanceRepository
	mockClosingRepo    *MockClosingRepository
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockAttendanceRepo = new(MockAttendanceRepository)
	suite.mockClosingRepo = new(MockClosingRepository)
}

func (suite *AttendanceServiceTestSuite) newService(now time.Time) portssvc.AttendanceSvcFacade {
	return services.NewAttendanceService(
		suite.mockAttendanceRepo,
		suite.mockClosingRepo,
		5,
		services.WithAttendanceClock(func() time.Time { return now }),
	)
}

func (suite *AttendanceServiceTestSuite) TestClockIn_Success() {
	ctx := context.Background()
	now := dayAt(14, 9, 15)
	req := dto.ClockInRequest{EmployeeID: "emp-1", RoleID: "role-1", Notes: "llegó temprano"}

	suite.mockAttendanceRepo.On("FindOpenByEmployee", ctx, "emp-1").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAttendanceRepo.On("SaveAttendance", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(nil).Once()
	suite.mockAttendanceRepo.On("FindAttendanceByID", ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound).Once()

	svc := suite.newService(now)
	record, err := svc.ClockIn(ctx, "loc-1", req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.NotEmpty(record.RecordID)
	suite.Equal("emp-1", record.EmployeeID)
	suite.Equal("loc-1", record.LocationID)
	suite.Equal("2025-06-14", record.WorkDate)
	suite.Equal(now, record.ClockInAt)
	suite.Equal("user-1", record.ClockInBy)
	suite.True(record.IsOpen())
	suite.mockAttendanceRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestClockIn_PostMidnightKeepsPreviousWorkDate() {
	ctx := context.Background()
	now := dayAt(15, 1, 30)

	suite.mockAttendanceRepo.On("FindOpenByEmployee", ctx, "emp-1").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAttendanceRepo.On("SaveAttendance", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Return(nil).Once()
	suite.mockAttendanceRepo.On("FindAttendanceByID", ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound).Once()

	svc := suite.newService(now)
	record, err := svc.ClockIn(ctx, "loc-1", dto.ClockInRequest{EmployeeID: "emp-1", RoleID: "role-1"}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("2025-06-14", record.WorkDate)
}

func (suite *AttendanceServiceTestSuite) TestClockIn_RejectedWhenOpenElsewhere() {
	ctx := context.Background()

	suite.mockAttendanceRepo.On("FindOpenByEmployee", ctx, "emp-1").
		Return(&domain.AttendanceRecord{RecordID: "rec-9", LocationName: "Sucursal Centro"}, nil).Once()

	svc := suite.newService(dayAt(14, 9, 0))
	record, err := svc.ClockIn(ctx, "loc-1", dto.ClockInRequest{EmployeeID: "emp-1", RoleID: "role-1"}, "user-1")

	suite.Nil(record)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "Sucursal Centro")
	suite.mockAttendanceRepo.AssertNotCalled(suite.T(), "SaveAttendance")
}

func (suite *AttendanceServiceTestSuite) TestClockOut_Success() {
	ctx := context.Background()
	now := dayAt(14, 17, 45)

	open := &domain.AttendanceRecord{RecordID: "rec-1", EmployeeID: "emp-1", ClockInAt: dayAt(14, 9, 0)}
	closed := *open
	closed.ClockOutAt = timePtr(now)

	suite.mockAttendanceRepo.On("FindAttendanceByID", ctx, "rec-1").
		Return(open, nil).Once()
	suite.mockAttendanceRepo.On("SetClockOut", ctx, "rec-1", now, "user-1", "fin de turno").
		Return(&closed, nil).Once()

	svc := suite.newService(now)
	record, err := svc.ClockOut(ctx, "rec-1", dto.ClockOutRequest{Notes: "fin de turno"}, "user-1")

	suite.Require().NoError(err)
	suite.False(record.IsOpen())
	suite.mockAttendanceRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestClockOut_AlreadyClosed() {
	ctx := context.Background()

	closedAt := dayAt(14, 17, 0)
	suite.mockAttendanceRepo.On("FindAttendanceByID", ctx, "rec-1").
		Return(&domain.AttendanceRecord{RecordID: "rec-1", ClockOutAt: &closedAt}, nil).Once()

	svc := suite.newService(dayAt(14, 18, 0))
	record, err := svc.ClockOut(ctx, "rec-1", dto.ClockOutRequest{}, "user-1")

	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAttendanceRepo.AssertNotCalled(suite.T(), "SetClockOut")
}

func (suite *AttendanceServiceTestSuite) TestClockOut_NotFound() {
	ctx := context.Background()

	suite.mockAttendanceRepo.On("FindAttendanceByID", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	svc := suite.newService(dayAt(14, 18, 0))
	_, err := svc.ClockOut(ctx, "missing", dto.ClockOutRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AttendanceServiceTestSuite) TestListOpenTurnRecords_FiltersAfterLastClosing() {
	ctx := context.Background()
	now := dayAt(14, 19, 0)
	workDate := "2025-06-14"
	closedAt := dayAt(14, 17, 30)

	suite.mockClosingRepo.On("FindLastTurnClosing", ctx, "loc-1", workDate).
		Return(&domain.TurnClosing{ClosedAt: closedAt}, nil).Once()
	suite.mockAttendanceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.AttendanceRecord{
			{RecordID: "rec-1", ClockInAt: dayAt(14, 9, 0)},
			{RecordID: "rec-2", ClockInAt: closedAt.Add(time.Minute)},
		}, nil).Once()

	svc := suite.newService(now)
	records, err := svc.ListOpenTurnRecords(ctx, "loc-1")

	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("rec-2", records[0].RecordID)
}

func (suite *AttendanceServiceTestSuite) TestListActiveRecords_OnlyOpenOnes() {
	ctx := context.Background()
	now := dayAt(14, 12, 0)
	workDate := "2025-06-14"
	out := dayAt(14, 11, 0)

	suite.mockClosingRepo.On("FindLastTurnClosing", ctx, "loc-1", workDate).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAttendanceRepo.On("ListForWorkDate", ctx, "loc-1", workDate).
		Return([]domain.AttendanceRecord{
			{RecordID: "rec-1", ClockInAt: dayAt(14, 9, 0)},
			{RecordID: "rec-2", ClockInAt: dayAt(14, 10, 0), ClockOutAt: &out},
		}, nil).Once()

	svc := suite.newService(now)
	records, err := svc.ListActiveRecords(ctx, "loc-1")

	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("rec-1", records[0].RecordID)
}

func TestAttendanceService(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}

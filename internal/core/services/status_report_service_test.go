package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockClosingReader is a mock type for the ClosingReaderSvc interface
type MockClosingReader struct {
	mock.Mock
}

func (m *MockClosingReader) PreviewClosing(ctx context.Context, locationID string) (*domain.ClosingSnapshot, domain.TurnInfo, error) {
	args := m.Called(ctx, locationID)
	var snapshot *domain.ClosingSnapshot
	if args.Get(0) != nil {
		snapshot = args.Get(0).(*domain.ClosingSnapshot)
	}
	return snapshot, args.Get(1).(domain.TurnInfo), args.Error(2)
}

func (m *MockClosingReader) GetTurnClosingByID(ctx context.Context, closingID string) (*domain.TurnClosing, error) {
	args := m.Called(ctx, closingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TurnClosing), args.Error(1)
}

func (m *MockClosingReader) ListTurnClosings(ctx context.Context, locationID string, fromDate, toDate *string) ([]domain.TurnClosing, error) {
	args := m.Called(ctx, locationID, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TurnClosing), args.Error(1)
}

func (m *MockClosingReader) ListDayClosings(ctx context.Context, locationID string, fromDate, toDate *string) ([]domain.DayClosing, error) {
	args := m.Called(ctx, locationID, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayClosing), args.Error(1)
}

type StatusReportServiceTestSuite struct {
	suite.Suite
	mockReportRepo    *MockStatusReportRepository
	mockClosingReader *MockClosingReader
}

func (suite *StatusReportServiceTestSuite) SetupTest() {
	suite.mockReportRepo = new(MockStatusReportRepository)
	suite.mockClosingReader = new(MockClosingReader)
}

func (suite *StatusReportServiceTestSuite) newService(now time.Time) portssvc.StatusReportSvcFacade {
	return services.NewStatusReportService(
		suite.mockReportRepo,
		suite.mockClosingReader,
		5,
		services.WithStatusReportClock(func() time.Time { return now }),
	)
}

func (suite *StatusReportServiceTestSuite) TestGenerate_FirstReportOfTheDay() {
	ctx := context.Background()
	now := dayAt(14, 11, 27)
	locationID := "a3f8c2d1-9b4e-4f6a-8c7d-1e2f3a4b5c6d"

	first := domain.TurnFirst
	suite.mockClosingReader.On("PreviewClosing", ctx, locationID).
		Return(&domain.ClosingSnapshot{WorkDate: "2025-06-14"}, domain.TurnInfo{Turn: &first, TurnNumber: 1}, nil).Once()
	suite.mockReportRepo.On("FindLastReportNumber", ctx, locationID, "2025-06-14").
		Return("", apperrors.ErrNotFound).Once()
	suite.mockReportRepo.On("SaveStatusReport", ctx, mock.AnythingOfType("domain.StatusReport")).
		Return(nil).Once()

	svc := suite.newService(now)
	report, err := svc.GenerateStatusReport(ctx, locationID, "control de medio día", "user-1")

	suite.Require().NoError(err)
	suite.Equal("LOCa3f8-20250614-001", report.ReportNumber)
	suite.Equal("2025-06-14", report.WorkDate)
	suite.Equal("11:27", report.ReportTime)
	suite.Equal("user-1", report.GeneratedBy)
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *StatusReportServiceTestSuite) TestGenerate_SequentialNumbering() {
	ctx := context.Background()
	now := dayAt(14, 16, 5)
	locationID := "a3f8c2d1-9b4e-4f6a-8c7d-1e2f3a4b5c6d"

	suite.mockClosingReader.On("PreviewClosing", ctx, locationID).
		Return(&domain.ClosingSnapshot{}, domain.TurnInfo{}, nil).Once()
	suite.mockReportRepo.On("FindLastReportNumber", ctx, locationID, "2025-06-14").
		Return("LOCa3f8-20250614-007", nil).Once()
	suite.mockReportRepo.On("SaveStatusReport", ctx, mock.AnythingOfType("domain.StatusReport")).
		Return(nil).Once()

	svc := suite.newService(now)
	report, err := svc.GenerateStatusReport(ctx, locationID, "", "user-1")

	suite.Require().NoError(err)
	suite.Equal("LOCa3f8-20250614-008", report.ReportNumber)
}

func (suite *StatusReportServiceTestSuite) TestGenerate_FallbackLastNumberRestartsSequence() {
	ctx := context.Background()
	now := dayAt(14, 18, 40)
	locationID := "a3f8c2d1-9b4e-4f6a-8c7d-1e2f3a4b5c6d"

	// A stored fallback number carries a millisecond suffix. It must not
	// be continued as if it were a sequence position.
	suite.mockClosingReader.On("PreviewClosing", ctx, locationID).
		Return(&domain.ClosingSnapshot{}, domain.TurnInfo{}, nil).Once()
	suite.mockReportRepo.On("FindLastReportNumber", ctx, locationID, "2025-06-14").
		Return("REP-1749916800000", nil).Once()
	suite.mockReportRepo.On("SaveStatusReport", ctx, mock.AnythingOfType("domain.StatusReport")).
		Return(nil).Once()

	svc := suite.newService(now)
	report, err := svc.GenerateStatusReport(ctx, locationID, "", "user-1")

	suite.Require().NoError(err)
	suite.Equal("LOCa3f8-20250614-001", report.ReportNumber)
}

func (suite *StatusReportServiceTestSuite) TestGenerate_LookupFailureFallsBackToTimestampNumber() {
	ctx := context.Background()
	now := dayAt(14, 16, 5)

	suite.mockClosingReader.On("PreviewClosing", ctx, "loc-1").
		Return(&domain.ClosingSnapshot{}, domain.TurnInfo{}, nil).Once()
	suite.mockReportRepo.On("FindLastReportNumber", ctx, "loc-1", "2025-06-14").
		Return("", errors.New("connection refused")).Once()
	suite.mockReportRepo.On("SaveStatusReport", ctx, mock.AnythingOfType("domain.StatusReport")).
		Return(nil).Once()

	svc := suite.newService(now)
	report, err := svc.GenerateStatusReport(ctx, "loc-1", "", "user-1")

	suite.Require().NoError(err)
	suite.Regexp(`^REP-\d+$`, report.ReportNumber)
}

func (suite *StatusReportServiceTestSuite) TestGenerate_SnapshotFailureAborts() {
	ctx := context.Background()

	suite.mockClosingReader.On("PreviewClosing", ctx, "loc-1").
		Return(nil, domain.TurnInfo{}, errors.New("store unavailable")).Once()

	svc := suite.newService(dayAt(14, 12, 0))
	report, err := svc.GenerateStatusReport(ctx, "loc-1", "", "user-1")

	suite.Nil(report)
	suite.Error(err)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "SaveStatusReport")
}

func TestStatusReportService(t *testing.T) {
	suite.Run(t, new(StatusReportServiceTestSuite))
}

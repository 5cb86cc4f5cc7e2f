package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartdom/shift_management_app/internal/core/domain"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type TurnServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClosingRepository
}

func (suite *TurnServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClosingRepository)
}

func (suite *TurnServiceTestSuite) newService(now time.Time) portssvc.TurnSvcFacade {
	return services.NewTurnService(suite.mockRepo, 5, services.WithTurnClock(func() time.Time { return now }))
}

func clock(hour, minute int) time.Time {
	return time.Date(2025, 6, 14, hour, minute, 0, 0, time.Local)
}

func (suite *TurnServiceTestSuite) TestCurrentWorkDate_RollsBackBeforeCutover() {
	svc := suite.newService(clock(2, 0))
	suite.Equal("2025-06-13", svc.CurrentWorkDate())

	svc = suite.newService(clock(12, 0))
	suite.Equal("2025-06-14", svc.CurrentWorkDate())
}

func (suite *TurnServiceTestSuite) TestIdentify_BeforeCutover() {
	svc := suite.newService(clock(4, 30))

	info := svc.IdentifyCurrentTurn(context.Background(), "loc-1")

	suite.Nil(info.Turn)
	suite.Contains(info.Message, "Aún no es hora de abrir turno")
	suite.False(info.Closable)
	// The repository is never consulted before the cutover.
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTurnClosings")
}

func (suite *TurnServiceTestSuite) TestIdentify_NoClosings_FirstTurn() {
	ctx := context.Background()
	suite.mockRepo.On("ListTurnClosings", ctx, "loc-1", "2025-06-14").
		Return([]domain.TurnClosing{}, nil).Once()

	svc := suite.newService(clock(10, 0))
	info := svc.IdentifyCurrentTurn(ctx, "loc-1")

	suite.Require().NotNil(info.Turn)
	suite.Equal(domain.TurnFirst, *info.Turn)
	suite.Equal(1, info.TurnNumber)
	suite.Contains(info.Message, "Primer turno del día")
	suite.False(info.Closable, "first turn must not be closable before 17:00")
	suite.False(info.Degraded)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TurnServiceTestSuite) TestIdentify_FirstTurnClosableAfter17() {
	ctx := context.Background()
	suite.mockRepo.On("ListTurnClosings", ctx, "loc-1", "2025-06-14").
		Return([]domain.TurnClosing{}, nil).Once()

	svc := suite.newService(clock(18, 0))
	info := svc.IdentifyCurrentTurn(ctx, "loc-1")

	suite.Require().NotNil(info.Turn)
	suite.Equal(domain.TurnFirst, *info.Turn)
	suite.True(info.Closable)
}

func (suite *TurnServiceTestSuite) TestIdentify_OneClosingBefore17_Waiting() {
	ctx := context.Background()
	suite.mockRepo.On("ListTurnClosings", ctx, "loc-1", "2025-06-14").
		Return([]domain.TurnClosing{{Turn: domain.TurnFirst}}, nil).Once()

	svc := suite.newService(clock(15, 0))
	info := svc.IdentifyCurrentTurn(ctx, "loc-1")

	suite.Nil(info.Turn)
	suite.Contains(info.Message, "El segundo turno solo puede iniciarse después de las 17:00 hs")
}

func (suite *TurnServiceTestSuite) TestIdentify_OneClosingAfter17_SecondTurn() {
	ctx := context.Background()
	suite.mockRepo.On("ListTurnClosings", ctx, "loc-1", "2025-06-14").
		Return([]domain.TurnClosing{{Turn: domain.TurnFirst}}, nil).Once()

	svc := suite.newService(clock(19, 0))
	info := svc.IdentifyCurrentTurn(ctx, "loc-1")

	suite.Require().NotNil(info.Turn)
	suite.Equal(domain.TurnSecond, *info.Turn)
	suite.Equal(2, info.TurnNumber)
	suite.Contains(info.Message, "Segundo turno del día")
	suite.False(info.Closable, "second turn closes only after midnight")
}

func (suite *TurnServiceTestSuite) TestIdentify_TwoClosings_DayDone() {
	ctx := context.Background()
	suite.mockRepo.On("ListTurnClosings", ctx, "loc-1", "2025-06-14").
		Return([]domain.TurnClosing{{Turn: domain.TurnFirst}, {Turn: domain.TurnSecond}}, nil).Once()

	svc := suite.newService(clock(20, 0))
	info := svc.IdentifyCurrentTurn(ctx, "loc-1")

	suite.Nil(info.Turn)
	suite.Equal("Ya se cerraron los dos turnos del día", info.Message)
}

func (suite *TurnServiceTestSuite) TestIdentify_RepoError_DegradesToFirstTurn() {
	ctx := context.Background()
	suite.mockRepo.On("ListTurnClosings", ctx, "loc-1", "2025-06-14").
		Return(nil, errors.New("connection refused")).Once()

	svc := suite.newService(clock(10, 0))
	info := svc.IdentifyCurrentTurn(ctx, "loc-1")

	suite.Require().NotNil(info.Turn)
	suite.Equal(domain.TurnFirst, *info.Turn)
	suite.Equal(1, info.TurnNumber)
	suite.Contains(info.Message, "(default)")
	suite.True(info.Degraded, "repo failure must be flagged, not silent")
}

func TestTurnService(t *testing.T) {
	suite.Run(t, new(TurnServiceTestSuite))
}

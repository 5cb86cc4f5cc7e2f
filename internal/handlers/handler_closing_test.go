package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/smartdom/shift_management_app/internal/handlers"
	"github.com/smartdom/shift_management_app/internal/platform/config"
	"github.com/smartdom/shift_management_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TurnService ---
type MockTurnService struct {
	mock.Mock
}

func (m *MockTurnService) CurrentWorkDate() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockTurnService) IdentifyCurrentTurn(ctx context.Context, locationID string) domain.TurnInfo {
	args := m.Called(ctx, locationID)
	return args.Get(0).(domain.TurnInfo)
}

var _ portssvc.TurnSvcFacade = (*MockTurnService)(nil)

// --- Mock ClosingService ---
type MockClosingService struct {
	mock.Mock
}

func (m *MockClosingService) PreviewClosing(ctx context.Context, locationID string) (*domain.ClosingSnapshot, domain.TurnInfo, error) {
	args := m.Called(ctx, locationID)
	var snapshot *domain.ClosingSnapshot
	if args.Get(0) != nil {
		snapshot = args.Get(0).(*domain.ClosingSnapshot)
	}
	return snapshot, args.Get(1).(domain.TurnInfo), args.Error(2)
}

func (m *MockClosingService) GetTurnClosingByID(ctx context.Context, closingID string) (*domain.TurnClosing, error) {
	args := m.Called(ctx, closingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TurnClosing), args.Error(1)
}

func (m *MockClosingService) ListTurnClosings(ctx context.Context, locationID string, fromDate, toDate *string) ([]domain.TurnClosing, error) {
	args := m.Called(ctx, locationID, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TurnClosing), args.Error(1)
}

func (m *MockClosingService) ListDayClosings(ctx context.Context, locationID string, fromDate, toDate *string) ([]domain.DayClosing, error) {
	args := m.Called(ctx, locationID, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayClosing), args.Error(1)
}

func (m *MockClosingService) CloseTurn(ctx context.Context, locationID string, turn *domain.TurnLabel, generalNotes string, userID string) (*domain.TurnClosing, error) {
	args := m.Called(ctx, locationID, turn, generalNotes, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TurnClosing), args.Error(1)
}

func (m *MockClosingService) CloseDay(ctx context.Context, locationID string, generalNotes string, userID string) (*domain.DayClosing, error) {
	args := m.Called(ctx, locationID, generalNotes, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayClosing), args.Error(1)
}

var _ portssvc.ClosingSvcFacade = (*MockClosingService)(nil)

// --- Test Suite ---
type ClosingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockTurnService    *MockTurnService
	mockClosingService *MockClosingService
	jwtSecret          string
}

func (suite *ClosingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockTurnService = new(MockTurnService)
	suite.mockClosingService = new(MockClosingService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keeps swagger routes out of the test router
	}
	container := &portssvc.ServiceContainer{
		Turn:    suite.mockTurnService,
		Closing: suite.mockClosingService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *ClosingHandlerTestSuite) authHeader(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *ClosingHandlerTestSuite) TestGetCurrentTurn() {
	locationID := uuid.NewString()
	first := domain.TurnFirst

	suite.mockTurnService.On("IdentifyCurrentTurn", mock.Anything, locationID).
		Return(domain.TurnInfo{Turn: &first, TurnNumber: 1, Message: "Primer turno del día", Closable: false}).Once()
	suite.mockTurnService.On("CurrentWorkDate").Return("2025-06-14").Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/locations/"+locationID+"/turn", nil)
	req.Header.Set("Authorization", suite.authHeader(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TurnInfoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-06-14", resp.WorkDate)
	suite.Require().NotNil(resp.Turn)
	suite.Equal(string(domain.TurnFirst), *resp.Turn)
	suite.Equal(1, resp.TurnNumber)
	suite.False(resp.Closable)
}

func (suite *ClosingHandlerTestSuite) TestCloseTurn_Created() {
	locationID := uuid.NewString()
	userID := uuid.NewString()

	closing := &domain.TurnClosing{
		ClosingID:    uuid.NewString(),
		LocationID:   locationID,
		WorkDate:     "2025-06-14",
		Turn:         domain.TurnFirst,
		ClosedAt:     time.Now(),
		TotalVoucher: decimal.NewFromFloat(30.35),
		ClosedBy:     userID,
		Report:       []byte(`{}`),
	}
	suite.mockClosingService.On("CloseTurn", mock.Anything, locationID, (*domain.TurnLabel)(nil), "sin novedades", userID).
		Return(closing, nil).Once()

	body, _ := json.Marshal(dto.CloseTurnRequest{GeneralNotes: "sin novedades"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/locations/"+locationID+"/closings/turn", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TurnClosingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(closing.ClosingID, resp.ClosingID)
	suite.Equal(string(domain.TurnFirst), resp.Turn)
	suite.mockClosingService.AssertExpectations(suite.T())
}

func (suite *ClosingHandlerTestSuite) TestCloseTurn_NotYetEligibleIs422() {
	locationID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockClosingService.On("CloseTurn", mock.Anything, locationID, (*domain.TurnLabel)(nil), "", userID).
		Return(nil, apperrors.NewNotYetEligibleError("El primer turno no puede cerrarse antes de las 17:00 hs.")).Once()

	body, _ := json.Marshal(dto.CloseTurnRequest{})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/locations/"+locationID+"/closings/turn", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "17:00")
}

func (suite *ClosingHandlerTestSuite) TestCloseTurn_AlreadyClosedIs409() {
	locationID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockClosingService.On("CloseTurn", mock.Anything, locationID, (*domain.TurnLabel)(nil), "", userID).
		Return(nil, apperrors.NewAlreadyClosedError("el turno ya fue cerrado")).Once()

	body, _ := json.Marshal(dto.CloseTurnRequest{})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/locations/"+locationID+"/closings/turn", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ClosingHandlerTestSuite) TestCloseTurn_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/locations/loc-1/closings/turn", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockClosingService.AssertNotCalled(suite.T(), "CloseTurn")
}

func TestClosingHandler(t *testing.T) {
	suite.Run(t, new(ClosingHandlerTestSuite))
}

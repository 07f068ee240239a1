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
	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/dto"
	"github.com/streampay-labs/payrolld/internal/handlers"
	"github.com/streampay-labs/payrolld/pkg/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DisbursementService ---
type MockDisbursementService struct {
	mock.Mock
}

func (m *MockDisbursementService) Disburse(ctx context.Context, businessID string, req dto.DisburseRequest, userID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockDisbursementService) DisburseSingle(ctx context.Context, businessID string, req dto.SingleDisburseRequest, userID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockDisbursementService) GetRun(ctx context.Context, businessID, runID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, businessID, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockDisbursementService) ListRuns(ctx context.Context, businessID string, params dto.ListRunsParams) (*dto.ListRunsResponse, error) {
	args := m.Called(ctx, businessID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListRunsResponse), args.Error(1)
}

func (m *MockDisbursementService) ListPayments(ctx context.Context, businessID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	args := m.Called(ctx, businessID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPaymentsResponse), args.Error(1)
}

func (m *MockDisbursementService) AccountBalance(ctx context.Context, businessID string) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ScheduleService ---
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) SaveSchedule(ctx context.Context, businessID string, req dto.SaveScheduleRequest, userID string) (*domain.ScheduleConfig, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleConfig), args.Error(1)
}

func (m *MockScheduleService) GetSchedule(ctx context.Context, businessID string) (*domain.ScheduleConfig, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleConfig), args.Error(1)
}

func (m *MockScheduleService) RemoveSchedule(ctx context.Context, businessID string, userID string) error {
	args := m.Called(ctx, businessID, userID)
	return args.Error(0)
}

// --- Test Suite ---
type DisbursementHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockDisburse *MockDisbursementService
	mockSchedule *MockScheduleService
	businessID   string
}

func (suite *DisbursementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockDisburse = new(MockDisbursementService)
	suite.mockSchedule = new(MockScheduleService)
	suite.businessID = "0xBusinessWallet"

	container := &portssvc.ServiceContainer{
		Disbursement: suite.mockDisburse,
		Schedule:     suite.mockSchedule,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, container)
}

func (suite *DisbursementHandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", "operator-1")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DisbursementHandlerTestSuite) TestDisburse_Created() {
	run := &domain.PayrollRun{
		RunID:       "run-1",
		BusinessID:  suite.businessID,
		TotalAmount: decimal.NewFromInt(500),
		Status:      domain.RunSuccess,
	}
	suite.mockDisburse.On("Disburse", mock.Anything, suite.businessID, dto.DisburseRequest{RecipientIDs: []string{"worker-1"}}, "operator-1").
		Return(run, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/businesses/"+suite.businessID+"/disbursements",
		gin.H{"recipientIDs": []string{"worker-1"}})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RunResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("run-1", resp.RunID)
	suite.Equal("SUCCESS", resp.Status)
	suite.mockDisburse.AssertExpectations(suite.T())
}

func (suite *DisbursementHandlerTestSuite) TestDisburse_PendingIsAccepted() {
	run := &domain.PayrollRun{RunID: "run-2", Status: domain.RunPending}
	suite.mockDisburse.On("Disburse", mock.Anything, suite.businessID, mock.Anything, "operator-1").
		Return(run, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/businesses/"+suite.businessID+"/disbursements",
		gin.H{"recipientIDs": []string{"worker-1"}})

	suite.Equal(http.StatusAccepted, w.Code)
}

func (suite *DisbursementHandlerTestSuite) TestDisburse_ConcurrentRunConflicts() {
	suite.mockDisburse.On("Disburse", mock.Anything, suite.businessID, mock.Anything, "operator-1").
		Return(nil, apperrors.ErrConcurrentRun).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/businesses/"+suite.businessID+"/disbursements",
		gin.H{"recipientIDs": []string{"worker-1"}})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *DisbursementHandlerTestSuite) TestDisburse_EmptyRecipientsRejectedByBinding() {
	w := suite.performJSON(http.MethodPost, "/api/v1/businesses/"+suite.businessID+"/disbursements",
		gin.H{"recipientIDs": []string{}})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDisburse.AssertNotCalled(suite.T(), "Disburse", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DisbursementHandlerTestSuite) TestGetRun_NotFound() {
	suite.mockDisburse.On("GetRun", mock.Anything, suite.businessID, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/businesses/"+suite.businessID+"/runs/ghost", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DisbursementHandlerTestSuite) TestGetBalance() {
	suite.mockDisburse.On("AccountBalance", mock.Anything, suite.businessID).
		Return(decimal.RequireFromString("1234.5"), nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/businesses/"+suite.businessID+"/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "1234.5")
}

func (suite *DisbursementHandlerTestSuite) TestSaveSchedule_InvalidIntervalRejectedByBinding() {
	w := suite.performJSON(http.MethodPut, "/api/v1/businesses/"+suite.businessID+"/schedule",
		gin.H{"interval": "DAILY", "dayRule": "WEEKDAY_NAME", "weekday": "Friday"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSchedule.AssertNotCalled(suite.T(), "SaveSchedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DisbursementHandlerTestSuite) TestSaveSchedule_OK() {
	now := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	config := &domain.ScheduleConfig{
		ScheduleID: "sched-1",
		BusinessID: suite.businessID,
		Rule: domain.ScheduleRule{
			Interval: domain.Weekly,
			DayRule:  domain.WeekdayName,
			Weekday:  time.Friday,
		},
		StartDate:       now,
		NextPaymentDate: now.AddDate(0, 0, 4),
	}
	suite.mockSchedule.On("SaveSchedule", mock.Anything, suite.businessID, mock.Anything, "operator-1").
		Return(config, nil).Once()

	w := suite.performJSON(http.MethodPut, "/api/v1/businesses/"+suite.businessID+"/schedule",
		gin.H{"interval": "WEEKLY", "dayRule": "WEEKDAY_NAME", "weekday": "Friday"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ScheduleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Friday", resp.Weekday)
	suite.mockSchedule.AssertExpectations(suite.T())
}

func (suite *DisbursementHandlerTestSuite) TestRemoveSchedule_NoContent() {
	suite.mockSchedule.On("RemoveSchedule", mock.Anything, suite.businessID, "operator-1").Return(nil).Once()

	w := suite.performJSON(http.MethodDelete, "/api/v1/businesses/"+suite.businessID+"/schedule", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestDisbursementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DisbursementHandlerTestSuite))
}

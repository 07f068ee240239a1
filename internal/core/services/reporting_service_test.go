package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockPayment *MockPaymentRepository
	service     portssvc.ReportingSvcFacade
	businessID  string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockPayment = new(MockPaymentRepository)
	suite.service = services.NewReportingService(suite.mockPayment)
	suite.businessID = "0xBusinessWallet"
}

func (suite *ReportingServiceTestSuite) TestSummary_FoldsHistory() {
	ctx := context.Background()
	base := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	history := []domain.PaymentRecord{
		{PaymentID: "p1", Amount: decimal.NewFromInt(1000), Category: domain.CategoryDeposit, Status: domain.PaymentSuccess, Timestamp: base},
		{PaymentID: "p2", Amount: decimal.NewFromInt(200), Category: domain.CategoryPayroll, Status: domain.PaymentSuccess, Timestamp: base.Add(time.Hour)},
		{PaymentID: "p3", Amount: decimal.NewFromInt(300), Category: domain.CategoryContractorPayment, Status: domain.PaymentFailed, Timestamp: base.Add(2 * time.Hour)},
	}

	suite.mockPayment.On("ListPaymentsByBusiness", ctx, suite.businessID, 500, (*string)(nil), portsrepo.PaymentListFilter{}).
		Return(history, nil, nil).Once()

	summary, err := suite.service.Summary(ctx, suite.businessID, time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Equal(3, summary.Count)
	suite.True(summary.TotalAmount.Equal(decimal.NewFromInt(1500)))
	suite.True(summary.TotalDeposits.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalWithdrawals.Equal(decimal.NewFromInt(500)))
	suite.True(summary.TotalPayroll.Equal(decimal.NewFromInt(500)))
	suite.Equal(1, summary.FailedCount)
	suite.mockPayment.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummary_WalksAllPages() {
	ctx := context.Background()
	token := "page-2"
	pageOne := []domain.PaymentRecord{
		{PaymentID: "p1", Amount: decimal.NewFromInt(100), Category: domain.CategoryDeposit, Status: domain.PaymentSuccess, Timestamp: time.Now()},
	}
	pageTwo := []domain.PaymentRecord{
		{PaymentID: "p2", Amount: decimal.NewFromInt(50), Category: domain.CategoryWithdrawal, Status: domain.PaymentSuccess, Timestamp: time.Now()},
	}

	suite.mockPayment.On("ListPaymentsByBusiness", ctx, suite.businessID, 500, (*string)(nil), portsrepo.PaymentListFilter{}).
		Return(pageOne, &token, nil).Once()
	suite.mockPayment.On("ListPaymentsByBusiness", ctx, suite.businessID, 500, &token, portsrepo.PaymentListFilter{}).
		Return(pageTwo, nil, nil).Once()

	summary, err := suite.service.Summary(ctx, suite.businessID, time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Equal(2, summary.Count)
	suite.True(summary.Net.Equal(decimal.NewFromInt(50)))
	suite.mockPayment.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummary_EmptyHistory() {
	ctx := context.Background()
	suite.mockPayment.On("ListPaymentsByBusiness", ctx, suite.businessID, 500, (*string)(nil), portsrepo.PaymentListFilter{}).
		Return([]domain.PaymentRecord{}, nil, nil).Once()

	summary, err := suite.service.Summary(ctx, suite.businessID, time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Equal(0, summary.Count)
	suite.True(summary.Average.IsZero())
	suite.True(summary.TotalAmount.IsZero())
}

func (suite *ReportingServiceTestSuite) TestSummary_PropagatesRepositoryError() {
	ctx := context.Background()
	suite.mockPayment.On("ListPaymentsByBusiness", ctx, suite.businessID, 500, (*string)(nil), portsrepo.PaymentListFilter{}).
		Return(nil, nil, context.DeadlineExceeded).Once()

	summary, err := suite.service.Summary(ctx, suite.businessID, time.Time{}, time.Time{})

	suite.Require().Error(err)
	suite.Nil(summary)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/core/services"
	"github.com/streampay-labs/payrolld/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecipientServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockRecipientRepository
	service    portssvc.RecipientSvcFacade
	businessID string
	userID     string
}

func (suite *RecipientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecipientRepository)
	suite.service = services.NewRecipientService(suite.mockRepo)
	suite.businessID = "0xBusinessWallet"
	suite.userID = uuid.NewString()
}

func (suite *RecipientServiceTestSuite) TestCreateRecipient_StartsInvited() {
	ctx := context.Background()
	req := dto.CreateRecipientRequest{
		Name:   "Ada",
		Email:  "ada@example.com",
		Role:   "Engineer",
		Amount: decimal.NewFromInt(200),
	}

	suite.mockRepo.On("SaveRecipient", ctx, mock.MatchedBy(func(r domain.Recipient) bool {
		return r.BusinessID == suite.businessID &&
			r.Kind == domain.Worker &&
			r.Status == domain.Invited &&
			r.WalletReference == "" &&
			r.CreatedBy == suite.userID
	})).Return(nil).Once()

	recipient, err := suite.service.CreateRecipient(ctx, suite.businessID, domain.Worker, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(recipient)
	suite.Equal(domain.Invited, recipient.Status)
	suite.False(recipient.Payable())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecipientServiceTestSuite) TestCreateRecipient_NonPositiveAmountRejected() {
	ctx := context.Background()
	req := dto.CreateRecipientRequest{
		Name:   "Ada",
		Email:  "ada@example.com",
		Role:   "Engineer",
		Amount: decimal.Zero,
	}

	recipient, err := suite.service.CreateRecipient(ctx, suite.businessID, domain.Worker, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(recipient)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRecipient", mock.Anything, mock.Anything)
}

func (suite *RecipientServiceTestSuite) TestConnectWallet_ActivatesRecipient() {
	ctx := context.Background()
	recipientID := "worker-1"
	req := dto.ConnectWalletRequest{WalletReference: "0xNewWallet"}

	suite.mockRepo.On("SetWalletReference", ctx, suite.businessID, recipientID, "0xNewWallet", mock.Anything).Return(nil).Once()
	suite.mockRepo.On("FindRecipientByID", ctx, suite.businessID, recipientID).Return(&domain.Recipient{
		RecipientID:     recipientID,
		BusinessID:      suite.businessID,
		WalletReference: "0xNewWallet",
		Amount:          decimal.NewFromInt(200),
		Status:          domain.Active,
	}, nil).Once()

	recipient, err := suite.service.ConnectWallet(ctx, suite.businessID, recipientID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Active, recipient.Status)
	suite.True(recipient.Payable())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecipientServiceTestSuite) TestConnectWallet_UnknownRecipient() {
	ctx := context.Background()
	suite.mockRepo.On("SetWalletReference", ctx, suite.businessID, "ghost", "0xWallet", mock.Anything).Return(apperrors.ErrNotFound).Once()

	recipient, err := suite.service.ConnectWallet(ctx, suite.businessID, "ghost", dto.ConnectWalletRequest{WalletReference: "0xWallet"}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(recipient)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RecipientServiceTestSuite) TestListRecipients_FilterByKind() {
	ctx := context.Background()
	kind := domain.Contractor
	expected := []domain.Recipient{{RecipientID: "contractor-1", Kind: domain.Contractor}}
	suite.mockRepo.On("ListRecipientsByBusiness", ctx, suite.businessID, &kind).Return(expected, nil).Once()

	recipients, err := suite.service.ListRecipients(ctx, suite.businessID, &kind)

	suite.Require().NoError(err)
	suite.Equal(expected, recipients)
}

func TestRecipientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipientServiceTestSuite))
}

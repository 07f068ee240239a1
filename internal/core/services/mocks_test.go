package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) CommitRun(ctx context.Context, run domain.PayrollRun, records []domain.PaymentRecord, paidRecipientIDs []string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, run, records, paidRecipientIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockPayrollRepository) FinalizeRun(ctx context.Context, runID string, status domain.RunStatus, paidRecipientIDs []string, updatedAt time.Time) error {
	args := m.Called(ctx, runID, status, paidRecipientIDs, updatedAt)
	return args.Error(0)
}

func (m *MockPayrollRepository) FindRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockPayrollRepository) FindRunBySettlementReference(ctx context.Context, businessID, settlementReference string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, businessID, settlementReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockPayrollRepository) ListRunsByBusiness(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.PayrollRun, *string, error) {
	args := m.Called(ctx, businessID, limit, nextToken)
	var runs []domain.PayrollRun
	if args.Get(0) != nil {
		runs = args.Get(0).([]domain.PayrollRun)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return runs, token, args.Error(2)
}

func (m *MockPayrollRepository) ListPendingRuns(ctx context.Context, olderThan time.Time, limit int) ([]domain.PayrollRun, error) {
	args := m.Called(ctx, olderThan, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollRun), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPaymentsByBusiness(ctx context.Context, businessID string, limit int, nextToken *string, filter portsrepo.PaymentListFilter) ([]domain.PaymentRecord, *string, error) {
	args := m.Called(ctx, businessID, limit, nextToken, filter)
	var records []domain.PaymentRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.PaymentRecord)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return records, token, args.Error(2)
}

func (m *MockPaymentRepository) FindPaymentsByRunID(ctx context.Context, runID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

// --- Mock RecipientRepository ---
type MockRecipientRepository struct {
	mock.Mock
}

func (m *MockRecipientRepository) FindRecipientByID(ctx context.Context, businessID, recipientID string) (*domain.Recipient, error) {
	args := m.Called(ctx, businessID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipient), args.Error(1)
}

func (m *MockRecipientRepository) FindRecipientsByIDs(ctx context.Context, businessID string, recipientIDs []string) (map[string]domain.Recipient, error) {
	args := m.Called(ctx, businessID, recipientIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Recipient), args.Error(1)
}

func (m *MockRecipientRepository) ListRecipientsByBusiness(ctx context.Context, businessID string, kind *domain.RecipientKind) ([]domain.Recipient, error) {
	args := m.Called(ctx, businessID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipient), args.Error(1)
}

func (m *MockRecipientRepository) SaveRecipient(ctx context.Context, recipient domain.Recipient) error {
	args := m.Called(ctx, recipient)
	return args.Error(0)
}

func (m *MockRecipientRepository) SetWalletReference(ctx context.Context, businessID, recipientID, walletReference string, updatedAt time.Time) error {
	args := m.Called(ctx, businessID, recipientID, walletReference, updatedAt)
	return args.Error(0)
}

func (m *MockRecipientRepository) ResetPaidStatuses(ctx context.Context, businessID string, updatedAt time.Time) error {
	args := m.Called(ctx, businessID, updatedAt)
	return args.Error(0)
}

// --- Mock ScheduleRepository ---
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) SaveSchedule(ctx context.Context, config domain.ScheduleConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockScheduleRepository) FindActiveSchedule(ctx context.Context, businessID string) (*domain.ScheduleConfig, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleConfig), args.Error(1)
}

func (m *MockScheduleRepository) RetireSchedule(ctx context.Context, businessID string, retiredAt time.Time, userID string) error {
	args := m.Called(ctx, businessID, retiredAt, userID)
	return args.Error(0)
}

// --- Mock LeaseRepository ---
type MockLeaseRepository struct {
	mock.Mock
}

func (m *MockLeaseRepository) AcquireLease(ctx context.Context, businessID string) (*domain.RunLease, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RunLease), args.Error(1)
}

func (m *MockLeaseRepository) AttachRun(ctx context.Context, token, runID string) error {
	args := m.Called(ctx, token, runID)
	return args.Error(0)
}

func (m *MockLeaseRepository) ReleaseLease(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockLeaseRepository) ReleaseLeaseByRun(ctx context.Context, runID string) error {
	args := m.Called(ctx, runID)
	return args.Error(0)
}

// --- Mock AlertRepository ---
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) SaveAlert(ctx context.Context, alert domain.LedgerAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) ListAlerts(ctx context.Context, businessID string) ([]domain.LedgerAlert, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerAlert), args.Error(1)
}

// --- Mock SettlementGateway ---
type MockSettlementGateway struct {
	mock.Mock
}

func (m *MockSettlementGateway) SubmitBatchTransfer(ctx context.Context, payerWallet string, instructions []domain.TransferInstruction, total decimal.Decimal) (string, error) {
	args := m.Called(ctx, payerWallet, instructions, total)
	return args.String(0), args.Error(1)
}

func (m *MockSettlementGateway) SubmitSingleTransfer(ctx context.Context, payerWallet, recipientWallet string, amount decimal.Decimal) (string, error) {
	args := m.Called(ctx, payerWallet, recipientWallet, amount)
	return args.String(0), args.Error(1)
}

func (m *MockSettlementGateway) GetTransferStatus(ctx context.Context, transactionRef string) (domain.TransferStatus, error) {
	args := m.Called(ctx, transactionRef)
	return args.Get(0).(domain.TransferStatus), args.Error(1)
}

func (m *MockSettlementGateway) GetAccountBalance(ctx context.Context, wallet string) (decimal.Decimal, error) {
	args := m.Called(ctx, wallet)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSettlementGateway) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/streampay-labs/payrolld/internal/dto"
)

// DisbursementSvcFacade orchestrates payroll disbursements: validation,
// exclusive run-lease acquisition, settlement submission, and the durable
// ledger commit.
type DisbursementSvcFacade interface {
	// Disburse submits one batched transfer covering the selected
	// recipients and records the outcome. Exactly one PayrollRun is
	// created per call; its status is Success, Failed, or Pending.
	Disburse(ctx context.Context, businessID string, req dto.DisburseRequest, userID string) (*domain.PayrollRun, error)

	// DisburseSingle pays one recipient ad hoc. Success and Failed
	// outcomes both produce a payment record.
	DisburseSingle(ctx context.Context, businessID string, req dto.SingleDisburseRequest, userID string) (*domain.PayrollRun, error)

	GetRun(ctx context.Context, businessID, runID string) (*domain.PayrollRun, error)

	ListRuns(ctx context.Context, businessID string, params dto.ListRunsParams) (*dto.ListRunsResponse, error)

	ListPayments(ctx context.Context, businessID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)

	// AccountBalance proxies the settlement network's spendable balance
	// for the business wallet.
	AccountBalance(ctx context.Context, businessID string) (decimal.Decimal, error)
}

package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/streampay-labs/payrolld/internal/core/ports/gateways"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/dto"
)

const defaultListLimit = 20
const maxListLimit = 100

// DisbursementConfig tunes the orchestrator's confirmation wait and ledger
// retry budget.
type DisbursementConfig struct {
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
	LedgerRetryMax uint64
	// LedgerRetryMaxWait bounds a single wait between ledger retries.
	LedgerRetryMaxWait time.Duration
	CurrencyCode       string
}

// disbursementService orchestrates payroll disbursements end to end:
// validation, exclusive run-lease, settlement submission, confirmation wait,
// and the durable ledger commit.
type disbursementService struct {
	BaseService
	payrollRepo   portsrepo.PayrollRepositoryFacade
	paymentRepo   portsrepo.PaymentRecordReader
	recipientRepo portsrepo.RecipientRepositoryFacade
	leaseRepo     portsrepo.LeaseRepositoryFacade
	alertRepo     portsrepo.AlertRepositoryFacade
	gateway       gateways.SettlementGateway
	cfg           DisbursementConfig
	now           func() time.Time
}

// NewDisbursementService creates a disbursement service.
func NewDisbursementService(
	payrollRepo portsrepo.PayrollRepositoryFacade,
	paymentRepo portsrepo.PaymentRecordReader,
	recipientRepo portsrepo.RecipientRepositoryFacade,
	leaseRepo portsrepo.LeaseRepositoryFacade,
	alertRepo portsrepo.AlertRepositoryFacade,
	gateway gateways.SettlementGateway,
	cfg DisbursementConfig,
) portssvc.DisbursementSvcFacade {
	return &disbursementService{
		payrollRepo:   payrollRepo,
		paymentRepo:   paymentRepo,
		recipientRepo: recipientRepo,
		leaseRepo:     leaseRepo,
		alertRepo:     alertRepo,
		gateway:       gateway,
		cfg:           cfg,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Disburse submits one batched transfer covering the selected recipients and
// records the outcome. Exactly one PayrollRun is created per call.
func (s *disbursementService) Disburse(ctx context.Context, businessID string, req dto.DisburseRequest, userID string) (*domain.PayrollRun, error) {
	recipients, total, err := s.validateRecipients(ctx, businessID, req.RecipientIDs)
	if err != nil {
		return nil, err
	}
	if err := s.preflight(ctx, businessID, total); err != nil {
		return nil, err
	}

	// All checks passed; claim the business's exclusive run lease. Nothing
	// before this point has side effects.
	lease, err := s.leaseRepo.AcquireLease(ctx, businessID)
	if err != nil {
		return nil, err
	}

	instructions := make([]domain.TransferInstruction, 0, len(recipients))
	for _, recipient := range recipients {
		instructions = append(instructions, domain.TransferInstruction{
			WalletReference: recipient.WalletReference,
			Amount:          recipient.Amount,
		})
	}

	submittedAt := s.now()
	settlementRef, submitErr := s.gateway.SubmitBatchTransfer(ctx, businessID, instructions, total)
	run := s.buildRun(businessID, recipients, total, settlementRef, submittedAt, userID)

	return s.resolveAndCommit(ctx, run, kindsByID(recipients), lease, submitErr)
}

// DisburseSingle pays one recipient ad hoc.
func (s *disbursementService) DisburseSingle(ctx context.Context, businessID string, req dto.SingleDisburseRequest, userID string) (*domain.PayrollRun, error) {
	recipients, total, err := s.validateRecipients(ctx, businessID, []string{req.RecipientID})
	if err != nil {
		return nil, err
	}
	if err := s.preflight(ctx, businessID, total); err != nil {
		return nil, err
	}

	lease, err := s.leaseRepo.AcquireLease(ctx, businessID)
	if err != nil {
		return nil, err
	}

	recipient := recipients[0]
	submittedAt := s.now()
	settlementRef, submitErr := s.gateway.SubmitSingleTransfer(ctx, businessID, recipient.WalletReference, recipient.Amount)
	run := s.buildRun(businessID, recipients, total, settlementRef, submittedAt, userID)

	return s.resolveAndCommit(ctx, run, kindsByID(recipients), lease, submitErr)
}

// validateRecipients loads and gates the selected recipients. No external
// call is made until every recipient passes.
func (s *disbursementService) validateRecipients(ctx context.Context, businessID string, recipientIDs []string) ([]domain.Recipient, decimal.Decimal, error) {
	if len(recipientIDs) == 0 {
		return nil, decimal.Zero, apperrors.NewAppError(400, "disbursement needs at least one recipient", apperrors.ErrValidation)
	}

	found, err := s.recipientRepo.FindRecipientsByIDs(ctx, businessID, recipientIDs)
	if err != nil {
		return nil, decimal.Zero, err
	}

	recipients := make([]domain.Recipient, 0, len(recipientIDs))
	total := decimal.Zero
	seen := make(map[string]bool, len(recipientIDs))
	for _, id := range recipientIDs {
		if seen[id] {
			return nil, decimal.Zero, apperrors.NewAppError(400, "recipient "+id+" selected twice", apperrors.ErrValidation)
		}
		seen[id] = true

		recipient, ok := found[id]
		if !ok {
			return nil, decimal.Zero, apperrors.NewAppError(400, "recipient "+id+" not found", apperrors.ErrValidation)
		}
		switch {
		case recipient.Status == domain.Invited:
			return nil, decimal.Zero, apperrors.NewAppError(400, "recipient "+id+" has no wallet connected", apperrors.ErrValidation)
		case recipient.Status == domain.Paid:
			return nil, decimal.Zero, apperrors.NewAppError(400, "recipient "+id+" was already paid this cycle", apperrors.ErrValidation)
		case !recipient.Payable():
			return nil, decimal.Zero, apperrors.NewAppError(400, "recipient "+id+" is not payable", apperrors.ErrValidation)
		}
		recipients = append(recipients, recipient)
		total = total.Add(recipient.Amount)
	}
	return recipients, total, nil
}

// preflight checks the gateway session and the payer's spendable balance
// before anything irreversible happens.
func (s *disbursementService) preflight(ctx context.Context, businessID string, total decimal.Decimal) error {
	if err := s.gateway.Ready(ctx); err != nil {
		return err
	}
	balance, err := s.gateway.GetAccountBalance(ctx, businessID)
	if err != nil {
		return err
	}
	if balance.LessThan(total) {
		return apperrors.NewAppError(400,
			"insufficient balance: have "+balance.String()+", need "+total.String(),
			apperrors.ErrSettlement)
	}
	return nil
}

func (s *disbursementService) buildRun(businessID string, recipients []domain.Recipient, total decimal.Decimal, settlementRef string, submittedAt time.Time, userID string) domain.PayrollRun {
	runID := uuid.NewString()
	if settlementRef == "" {
		// A rejected submit has no network reference; the run ID stands in
		// so the idempotency key stays unique.
		settlementRef = runID
	}
	snapshots := make([]domain.RecipientSnapshot, 0, len(recipients))
	for _, recipient := range recipients {
		snapshots = append(snapshots, domain.RecipientSnapshot{
			RecipientID:     recipient.RecipientID,
			Name:            recipient.Name,
			WalletReference: recipient.WalletReference,
			Amount:          recipient.Amount,
		})
	}
	return domain.PayrollRun{
		RunID:               runID,
		BusinessID:          businessID,
		TotalAmount:         total,
		CurrencyCode:        s.cfg.CurrencyCode,
		SettlementReference: settlementRef,
		Period:              submittedAt.Format("January 2006"),
		Recipients:          snapshots,
		AuditFields: domain.AuditFields{
			CreatedAt:     submittedAt,
			CreatedBy:     userID,
			LastUpdatedAt: submittedAt,
			LastUpdatedBy: userID,
		},
	}
}

// resolveAndCommit takes a submitted (or rejected) run to its recorded
// outcome. Every path writes a run; the lease is released on terminal
// outcomes only — a Pending run keeps it until the reconciler resolves it.
func (s *disbursementService) resolveAndCommit(ctx context.Context, run domain.PayrollRun, kinds map[string]domain.RecipientKind, lease *domain.RunLease, submitErr error) (*domain.PayrollRun, error) {
	// Funds are already in flight. A caller may abandon the wait, but the
	// outcome must still be recorded, so everything from here on runs on a
	// context that survives the request. The confirmation wait carries its
	// own deadline.
	ctx = context.WithoutCancel(ctx)

	if err := s.leaseRepo.AttachRun(ctx, lease.Token, run.RunID); err != nil {
		s.LogError(ctx, err, "failed to attach run to lease", slog.String("run_id", run.RunID))
	}

	if submitErr != nil {
		s.LogError(ctx, submitErr, "settlement submit failed", slog.String("run_id", run.RunID))
		run.Status = domain.RunFailed
		committed, err := s.commitWithRetry(ctx, run, kinds, nil)
		s.releaseLease(ctx, lease)
		if err != nil {
			return nil, err
		}
		return committed, nil
	}

	status := s.awaitConfirmation(ctx, run.SettlementReference)
	switch status {
	case domain.TransferConfirmed:
		run.Status = domain.RunSuccess
		committed, err := s.commitWithRetry(ctx, run, kinds, paidIDs(run))
		s.releaseLease(ctx, lease)
		if err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "disbursement succeeded",
			slog.String("run_id", committed.RunID),
			slog.String("total", committed.TotalAmount.String()))
		return committed, nil

	case domain.TransferReverted:
		run.Status = domain.RunFailed
		committed, err := s.commitWithRetry(ctx, run, kinds, nil)
		s.releaseLease(ctx, lease)
		if err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "disbursement reverted by settlement network", slog.String("run_id", committed.RunID))
		return committed, nil

	default:
		// Confirmation window expired. Record Pending and keep the lease;
		// the reconciler owns resolution from here.
		run.Status = domain.RunPending
		committed, err := s.commitWithRetry(ctx, run, kinds, nil)
		if err != nil {
			s.releaseLease(ctx, lease)
			return nil, err
		}
		s.LogInfo(ctx, "disbursement pending, handed to reconciler",
			slog.String("run_id", committed.RunID),
			slog.String("settlement_reference", committed.SettlementReference))
		return committed, nil
	}
}

// awaitConfirmation polls the settlement network until the transfer resolves
// or the confirmation window closes. A still-unresolved transfer reports
// TransferPending.
func (s *disbursementService) awaitConfirmation(ctx context.Context, settlementRef string) domain.TransferStatus {
	waitCtx, cancel := context.WithTimeout(ctx, s.cfg.ConfirmTimeout)
	defer cancel()

	result := domain.TransferPending
	operation := func() error {
		status, err := s.gateway.GetTransferStatus(waitCtx, settlementRef)
		if err != nil {
			// Transient lookup failures keep polling until the window closes.
			return err
		}
		if status == domain.TransferPending {
			return apperrors.ErrConfirmationTimeout
		}
		result = status
		return nil
	}

	policy := backoff.WithContext(backoff.NewConstantBackOff(s.cfg.PollInterval), waitCtx)
	_ = backoff.Retry(operation, policy)
	return result
}

// commitWithRetry drives the ledger write through a bounded exponential
// retry. The settlement already happened at this point, so exhausting the
// budget writes an operator alert before surfacing ErrLedgerWrite.
func (s *disbursementService) commitWithRetry(ctx context.Context, run domain.PayrollRun, kinds map[string]domain.RecipientKind, paidRecipientIDs []string) (*domain.PayrollRun, error) {
	records := s.buildRecords(run, kinds)
	var committed *domain.PayrollRun
	operation := func() error {
		result, err := s.payrollRepo.CommitRun(ctx, run, records, paidRecipientIDs)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				return backoff.Permanent(err)
			}
			return err
		}
		committed = result
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	if s.cfg.LedgerRetryMaxWait > 0 {
		bo.MaxInterval = s.cfg.LedgerRetryMaxWait
		if bo.InitialInterval > bo.MaxInterval {
			bo.InitialInterval = bo.MaxInterval
		}
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, s.cfg.LedgerRetryMax), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		s.LogError(ctx, err, "ledger write exhausted retries",
			slog.String("run_id", run.RunID),
			slog.String("settlement_reference", run.SettlementReference))
		s.raiseAlert(ctx, run, err)
		return nil, apperrors.NewAppError(500, "ledger write failed for run "+run.RunID, apperrors.ErrLedgerWrite)
	}
	return committed, nil
}

// buildRecords flattens the run into per-recipient history entries sharing
// the run's status and settlement reference.
func (s *disbursementService) buildRecords(run domain.PayrollRun, kinds map[string]domain.RecipientKind) []domain.PaymentRecord {
	records := make([]domain.PaymentRecord, 0, len(run.Recipients))
	for _, snapshot := range run.Recipients {
		category := domain.CategoryPayroll
		if kinds[snapshot.RecipientID] == domain.Contractor {
			category = domain.CategoryContractorPayment
		}
		records = append(records, domain.PaymentRecord{
			PaymentID:           uuid.NewString(),
			BusinessID:          run.BusinessID,
			RunID:               run.RunID,
			RecipientID:         snapshot.RecipientID,
			RecipientName:       snapshot.Name,
			Amount:              snapshot.Amount,
			Timestamp:           run.CreatedAt,
			Category:            category,
			Status:              domain.PaymentStatus(run.Status),
			SettlementReference: run.SettlementReference,
		})
	}
	return records
}

func kindsByID(recipients []domain.Recipient) map[string]domain.RecipientKind {
	kinds := make(map[string]domain.RecipientKind, len(recipients))
	for _, recipient := range recipients {
		kinds[recipient.RecipientID] = recipient.Kind
	}
	return kinds
}

func (s *disbursementService) raiseAlert(ctx context.Context, run domain.PayrollRun, cause error) {
	alert := domain.LedgerAlert{
		AlertID:             uuid.NewString(),
		BusinessID:          run.BusinessID,
		RunID:               run.RunID,
		SettlementReference: run.SettlementReference,
		Detail:              "ledger write exhausted retries after settlement: " + cause.Error(),
		CreatedAt:           s.now(),
	}
	if err := s.alertRepo.SaveAlert(ctx, alert); err != nil {
		s.LogError(ctx, err, "failed to write operator alert", slog.String("run_id", run.RunID))
	}
}

func (s *disbursementService) releaseLease(ctx context.Context, lease *domain.RunLease) {
	if err := s.leaseRepo.ReleaseLease(ctx, lease.Token); err != nil {
		s.LogError(ctx, err, "failed to release run lease", slog.String("business_id", lease.BusinessID))
	}
}

func paidIDs(run domain.PayrollRun) []string {
	ids := make([]string, 0, len(run.Recipients))
	for _, snapshot := range run.Recipients {
		ids = append(ids, snapshot.RecipientID)
	}
	return ids
}

// GetRun retrieves a run scoped to the business.
func (s *disbursementService) GetRun(ctx context.Context, businessID, runID string) (*domain.PayrollRun, error) {
	run, err := s.payrollRepo.FindRunByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.BusinessID != businessID {
		return nil, apperrors.ErrNotFound
	}
	return run, nil
}

// ListRuns retrieves a paginated page of the business's runs.
func (s *disbursementService) ListRuns(ctx context.Context, businessID string, params dto.ListRunsParams) (*dto.ListRunsResponse, error) {
	limit := clampLimit(params.Limit)
	runs, nextToken, err := s.payrollRepo.ListRunsByBusiness(ctx, businessID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.RunResponse, 0, len(runs))
	for i := range runs {
		responses = append(responses, dto.ToRunResponse(&runs[i]))
	}
	return &dto.ListRunsResponse{Runs: responses, NextToken: nextToken}, nil
}

// ListPayments retrieves a paginated, filtered page of payment history.
func (s *disbursementService) ListPayments(ctx context.Context, businessID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	limit := clampLimit(params.Limit)
	filter := portsrepo.PaymentListFilter{}
	if params.Status != nil {
		status := domain.PaymentStatus(*params.Status)
		filter.Status = &status
	}
	if params.Category != nil {
		category := domain.PaymentCategory(*params.Category)
		filter.Category = &category
	}
	records, nextToken, err := s.paymentRepo.ListPaymentsByBusiness(ctx, businessID, limit, params.NextToken, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(records),
		NextToken: nextToken,
	}, nil
}

// AccountBalance proxies the settlement network's spendable balance.
func (s *disbursementService) AccountBalance(ctx context.Context, businessID string) (decimal.Decimal, error) {
	return s.gateway.GetAccountBalance(ctx, businessID)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

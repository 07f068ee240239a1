package repositories

import (
	"context"
	"time"

	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// PayrollRunReader defines read operations for payroll run data.
type PayrollRunReader interface {
	// FindRunByID retrieves a run with its recipient snapshots.
	FindRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error)

	// FindRunBySettlementReference looks a run up by its idempotency key
	// (business, settlement reference). Returns apperrors.ErrNotFound when
	// no run carries the reference.
	FindRunBySettlementReference(ctx context.Context, businessID, settlementReference string) (*domain.PayrollRun, error)

	// ListRunsByBusiness retrieves a paginated list of runs, newest first.
	ListRunsByBusiness(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.PayrollRun, *string, error)

	// ListPendingRuns returns runs still awaiting settlement resolution,
	// oldest first, for the reconciliation poller.
	ListPendingRuns(ctx context.Context, olderThan time.Time, limit int) ([]domain.PayrollRun, error)
}

// LedgerWriter defines the durable, idempotent ledger write operations.
type LedgerWriter interface {
	// CommitRun persists the run, its payment records, and any recipient
	// status advances in a single atomic write. The idempotency key is
	// (businessID, settlementReference): a replay returns the already
	// committed run without double-counting.
	CommitRun(ctx context.Context, run domain.PayrollRun, records []domain.PaymentRecord, paidRecipientIDs []string) (*domain.PayrollRun, error)

	// FinalizeRun transitions a Pending run to a terminal status exactly
	// once, updating the run's payment records and advancing recipients to
	// Paid on Success within the same transaction. Returns
	// apperrors.ErrConflict when the run is already terminal.
	FinalizeRun(ctx context.Context, runID string, status domain.RunStatus, paidRecipientIDs []string, updatedAt time.Time) error
}

// PayrollRepositoryFacade combines run reads and ledger writes.
type PayrollRepositoryFacade interface {
	PayrollRunReader
	LedgerWriter
}

package repositories

import (
	"context"

	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// LeaseRepositoryFacade is the consistency guard: an exclusive run-lease per
// payer account, implemented as a single atomic conditional write at the store
// so it holds across service instances.
type LeaseRepositoryFacade interface {
	// AcquireLease claims the business's run lease. Returns
	// apperrors.ErrConcurrentRun when the lease is already held; callers
	// must never queue silently.
	AcquireLease(ctx context.Context, businessID string) (*domain.RunLease, error)

	// AttachRun links the created run to the lease so a Pending run's lease
	// can be released by the reconciler later.
	AttachRun(ctx context.Context, token, runID string) error

	// ReleaseLease releases by token. Releasing a token that no longer
	// holds the lease is a no-op, so a stale holder cannot evict a
	// successor.
	ReleaseLease(ctx context.Context, token string) error

	// ReleaseLeaseByRun releases the lease retained across a Pending run
	// once the run reaches a terminal state.
	ReleaseLeaseByRun(ctx context.Context, runID string) error
}

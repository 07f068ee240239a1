package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state of a resource.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrConfiguration indicates an invalid schedule or engine configuration.
// Local to the caller; never retried automatically.
var ErrConfiguration = errors.New("configuration error")

// ErrConcurrentRun indicates that a disbursement run is already in flight for
// the account. The caller must retry later; no run was created.
var ErrConcurrentRun = errors.New("disbursement already in flight for account")

// ErrSettlement indicates that the settlement network rejected or reverted the
// transfer. Terminal; the run is recorded as Failed.
var ErrSettlement = errors.New("settlement rejected")

// ErrConfirmationTimeout indicates the settlement network gave no confirmation
// within the bounded wait. Ambiguous: funds may or may not have moved. The run
// is recorded as Pending and reconciled asynchronously.
var ErrConfirmationTimeout = errors.New("settlement confirmation timed out")

// ErrLedgerWrite indicates a durable ledger write failed after the settlement
// network confirmed the transfer. Must never be swallowed; retried with the
// idempotency key until it succeeds or is escalated.
var ErrLedgerWrite = errors.New("ledger write failed")

package repositories

import (
	"context"

	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// PaymentListFilter narrows a payment history listing.
type PaymentListFilter struct {
	Status   *domain.PaymentStatus
	Category *domain.PaymentCategory
}

// PaymentRecordReader defines read operations over the append-only payment
// history. Records are only ever written through the LedgerWriter.
type PaymentRecordReader interface {
	// ListPaymentsByBusiness retrieves a paginated history slice, newest
	// first, using token-based pagination.
	ListPaymentsByBusiness(ctx context.Context, businessID string, limit int, nextToken *string, filter PaymentListFilter) ([]domain.PaymentRecord, *string, error)

	// FindPaymentsByRunID retrieves all records for a single run.
	FindPaymentsByRunID(ctx context.Context, runID string) ([]domain.PaymentRecord, error)
}

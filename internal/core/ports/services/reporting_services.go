package services

import (
	"context"
	"time"

	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// ReportingSvcFacade aggregates payment history into summary metrics.
type ReportingSvcFacade interface {
	// Summary reads the business's payment history and folds it into a
	// ReportSummary in a single pass. Zero bounds mean an open range.
	Summary(ctx context.Context, businessID string, from, to time.Time) (*domain.ReportSummary, error)
}

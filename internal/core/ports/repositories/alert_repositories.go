package repositories

import (
	"context"

	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// AlertRepositoryFacade stores operator escalation records for ledger writes
// that exhausted their retries after a confirmed settlement.
type AlertRepositoryFacade interface {
	SaveAlert(ctx context.Context, alert domain.LedgerAlert) error
	ListAlerts(ctx context.Context, businessID string) ([]domain.LedgerAlert, error)
}

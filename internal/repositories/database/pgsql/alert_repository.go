package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
)

// PgxAlertRepository stores operator escalation records.
type PgxAlertRepository struct {
	BaseRepository
}

func newPgxAlertRepository(pool *pgxpool.Pool) portsrepo.AlertRepositoryFacade {
	return &PgxAlertRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AlertRepositoryFacade = (*PgxAlertRepository)(nil)

func (r *PgxAlertRepository) SaveAlert(ctx context.Context, alert domain.LedgerAlert) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO ledger_alerts (alert_id, business_id, run_id, settlement_reference, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, alert.AlertID, alert.BusinessID, alert.RunID, alert.SettlementReference, alert.Detail, alert.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save ledger alert "+alert.AlertID, err)
	}
	return nil
}

func (r *PgxAlertRepository) ListAlerts(ctx context.Context, businessID string) ([]domain.LedgerAlert, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT alert_id, business_id, run_id, settlement_reference, detail, created_at
		FROM ledger_alerts
		WHERE business_id = $1
		ORDER BY created_at DESC;
	`, businessID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list ledger alerts for business "+businessID, err)
	}
	defer rows.Close()

	alerts := make([]domain.LedgerAlert, 0, 8)
	for rows.Next() {
		var a domain.LedgerAlert
		err := rows.Scan(&a.AlertID, &a.BusinessID, &a.RunID, &a.SettlementReference, &a.Detail, &a.CreatedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger alert", err)
		}
		alerts = append(alerts, a)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "failed reading ledger alert rows", rows.Err())
	}
	return alerts, nil
}

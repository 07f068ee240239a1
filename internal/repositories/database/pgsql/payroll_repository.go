package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	"github.com/streampay-labs/payrolld/internal/models"
	"github.com/streampay-labs/payrolld/internal/utils/mapping"
	"github.com/streampay-labs/payrolld/internal/utils/pagination"
)

// PgxPayrollRepository is the ledger writer: durable, idempotent recording of
// payroll runs and their flattened payment records.
type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(pool *pgxpool.Pool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

const runColumns = `run_id, business_id, total_amount, currency_code, status, settlement_reference, period, recipients,
		created_at, created_by, last_updated_at, last_updated_by`

// CommitRun persists the run, its payment records, and recipient status
// advances in a single transaction. The unique index on
// (business_id, settlement_reference) is the idempotency key: a replay leaves
// the ledger untouched and returns the run committed first.
func (r *PgxPayrollRepository) CommitRun(ctx context.Context, run domain.PayrollRun, records []domain.PaymentRecord, paidRecipientIDs []string) (*domain.PayrollRun, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	modelRun := mapping.ToModelPayrollRun(run)
	recipientsJSON, err := json.Marshal(modelRun.Recipients)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to encode recipient snapshots for run "+modelRun.RunID, err)
	}

	runQuery := `
		INSERT INTO payroll_runs (` + runColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (business_id, settlement_reference) DO NOTHING;
	`
	tag, err := tx.Exec(ctx, runQuery,
		modelRun.RunID,
		modelRun.BusinessID,
		modelRun.TotalAmount,
		modelRun.CurrencyCode,
		modelRun.Status,
		modelRun.SettlementReference,
		modelRun.Period,
		recipientsJSON,
		modelRun.CreatedAt,
		modelRun.CreatedBy,
		modelRun.LastUpdatedAt,
		modelRun.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payroll run "+modelRun.RunID, err)
	}
	if tag.RowsAffected() == 0 {
		// Idempotent replay: the key already committed. Return the
		// original run; nothing may be double-counted.
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			return nil, rbErr
		}
		return r.FindRunBySettlementReference(ctx, run.BusinessID, run.SettlementReference)
	}

	batch := &pgx.Batch{}
	recordQuery := `
		INSERT INTO payment_records (payment_id, business_id, run_id, recipient_id, recipient_name, amount, timestamp, category, status, settlement_reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, record := range records {
		modelRecord := mapping.ToModelPaymentRecord(record)
		batch.Queue(recordQuery,
			modelRecord.PaymentID,
			modelRecord.BusinessID,
			modelRecord.RunID,
			modelRecord.RecipientID,
			modelRecord.RecipientName,
			modelRecord.Amount,
			modelRecord.Timestamp,
			modelRecord.Category,
			modelRecord.Status,
			modelRecord.SettlementReference,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment records for run "+modelRun.RunID, err)
	}

	if len(paidRecipientIDs) > 0 {
		if err := markRecipientsPaid(ctx, tx, run.BusinessID, paidRecipientIDs, run.LastUpdatedAt, run.LastUpdatedBy); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &run, nil
}

// FinalizeRun transitions a Pending run to a terminal status exactly once.
// The conditional UPDATE on status='PENDING' makes concurrent finalizers
// first-writer-wins; the loser sees ErrConflict.
func (r *PgxPayrollRepository) FinalizeRun(ctx context.Context, runID string, status domain.RunStatus, paidRecipientIDs []string, updatedAt time.Time) error {
	if !status.Terminal() {
		return apperrors.NewAppError(400, "finalize requires a terminal status, got "+string(status), apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var businessID string
	err = tx.QueryRow(ctx, `
		UPDATE payroll_runs
		SET status = $2, last_updated_at = $3
		WHERE run_id = $1 AND status = 'PENDING'
		RETURNING business_id;
	`, runID, models.RunStatus(status), updatedAt).Scan(&businessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.classifyFinalizeMiss(ctx, runID)
		}
		return apperrors.NewAppError(500, "failed to finalize run "+runID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE payment_records SET status = $2 WHERE run_id = $1;
	`, runID, models.PaymentStatus(status))
	if err != nil {
		return apperrors.NewAppError(500, "failed to finalize payment records for run "+runID, err)
	}

	if status == domain.RunSuccess && len(paidRecipientIDs) > 0 {
		if err := markRecipientsPaid(ctx, tx, businessID, paidRecipientIDs, updatedAt, "reconciler"); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// classifyFinalizeMiss distinguishes "run does not exist" from "run already
// terminal" after a finalize found no Pending row to update.
func (r *PgxPayrollRepository) classifyFinalizeMiss(ctx context.Context, runID string) error {
	var current models.RunStatus
	err := r.Pool.QueryRow(ctx, `SELECT status FROM payroll_runs WHERE run_id = $1;`, runID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to read run status for "+runID, err)
	}
	return apperrors.ErrConflict
}

func markRecipientsPaid(ctx context.Context, tx pgx.Tx, businessID string, recipientIDs []string, updatedAt time.Time, updatedBy string) error {
	_, err := tx.Exec(ctx, `
		UPDATE recipients
		SET status = 'PAID', last_updated_at = $3, last_updated_by = $4
		WHERE business_id = $1 AND recipient_id = ANY($2);
	`, businessID, recipientIDs, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark recipients paid", err)
	}
	return nil
}

// FindRunByID retrieves a run with its recipient snapshots.
func (r *PgxPayrollRepository) FindRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+runColumns+` FROM payroll_runs WHERE run_id = $1;`, runID)
	return scanRun(row)
}

// FindRunBySettlementReference looks a run up by its idempotency key.
func (r *PgxPayrollRepository) FindRunBySettlementReference(ctx context.Context, businessID, settlementReference string) (*domain.PayrollRun, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+runColumns+` FROM payroll_runs
		WHERE business_id = $1 AND settlement_reference = $2;
	`, businessID, settlementReference)
	return scanRun(row)
}

// ListRunsByBusiness retrieves a paginated list of runs, newest first.
func (r *PgxPayrollRepository) ListRunsByBusiness(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.PayrollRun, *string, error) {
	args := []any{businessID, limit + 1}
	query := `
		SELECT ` + runColumns + ` FROM payroll_runs
		WHERE business_id = $1
	`
	if nextToken != nil {
		createdAt, runID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (created_at, run_id) < ($3, $4)`
		args = append(args, createdAt, runID)
	}
	query += ` ORDER BY created_at DESC, run_id DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list runs for business "+businessID, err)
	}
	defer rows.Close()

	runs := make([]domain.PayrollRun, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, nil, err
		}
		runs = append(runs, *run)
	}
	if rows.Err() != nil {
		return nil, nil, apperrors.NewAppError(500, "failed reading run rows", rows.Err())
	}

	var token *string
	if len(runs) > limit {
		runs = runs[:limit]
		last := runs[len(runs)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.RunID)
		token = &t
	}
	return runs, token, nil
}

// ListPendingRuns returns unresolved runs, oldest first, for the reconciler.
func (r *PgxPayrollRepository) ListPendingRuns(ctx context.Context, olderThan time.Time, limit int) ([]domain.PayrollRun, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+runColumns+` FROM payroll_runs
		WHERE status = 'PENDING' AND created_at <= $1
		ORDER BY created_at ASC
		LIMIT $2;
	`, olderThan, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list pending runs", err)
	}
	defer rows.Close()

	runs := make([]domain.PayrollRun, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "failed reading pending run rows", rows.Err())
	}
	return runs, nil
}

func scanRun(row pgx.Row) (*domain.PayrollRun, error) {
	var modelRun models.PayrollRun
	var recipientsJSON []byte
	err := row.Scan(
		&modelRun.RunID,
		&modelRun.BusinessID,
		&modelRun.TotalAmount,
		&modelRun.CurrencyCode,
		&modelRun.Status,
		&modelRun.SettlementReference,
		&modelRun.Period,
		&recipientsJSON,
		&modelRun.CreatedAt,
		&modelRun.CreatedBy,
		&modelRun.LastUpdatedAt,
		&modelRun.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan payroll run", err)
	}
	if err := json.Unmarshal(recipientsJSON, &modelRun.Recipients); err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode recipient snapshots for run "+modelRun.RunID, err)
	}
	run := mapping.ToDomainPayrollRun(modelRun)
	return &run, nil
}

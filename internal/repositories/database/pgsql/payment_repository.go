package pgsql

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	"github.com/streampay-labs/payrolld/internal/models"
	"github.com/streampay-labs/payrolld/internal/utils/mapping"
	"github.com/streampay-labs/payrolld/internal/utils/pagination"
)

// PgxPaymentRepository reads the append-only payment history.
type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRecordReader {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRecordReader = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, business_id, run_id, recipient_id, recipient_name, amount, timestamp, category, status, settlement_reference`

// ListPaymentsByBusiness retrieves a filtered history slice, newest first.
func (r *PgxPaymentRepository) ListPaymentsByBusiness(ctx context.Context, businessID string, limit int, nextToken *string, filter portsrepo.PaymentListFilter) ([]domain.PaymentRecord, *string, error) {
	args := []any{businessID, limit + 1}
	query := `
		SELECT ` + paymentColumns + ` FROM payment_records
		WHERE business_id = $1
	`
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	if nextToken != nil {
		timestamp, paymentID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		args = append(args, timestamp, paymentID)
		query += ` AND (timestamp, payment_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}
	query += ` ORDER BY timestamp DESC, payment_id DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list payments for business "+businessID, err)
	}
	defer rows.Close()

	records, err := collectPayments(rows, limit+1)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		t := pagination.EncodeToken(last.Timestamp, last.PaymentID)
		token = &t
	}
	return records, token, nil
}

// FindPaymentsByRunID retrieves every record of one run.
func (r *PgxPaymentRepository) FindPaymentsByRunID(ctx context.Context, runID string) ([]domain.PaymentRecord, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+paymentColumns+` FROM payment_records
		WHERE run_id = $1
		ORDER BY timestamp DESC, payment_id DESC;
	`, runID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payments for run "+runID, err)
	}
	defer rows.Close()
	return collectPayments(rows, 8)
}

func collectPayments(rows pgx.Rows, sizeHint int) ([]domain.PaymentRecord, error) {
	records := make([]domain.PaymentRecord, 0, sizeHint)
	for rows.Next() {
		var m models.PaymentRecord
		err := rows.Scan(
			&m.PaymentID,
			&m.BusinessID,
			&m.RunID,
			&m.RecipientID,
			&m.RecipientName,
			&m.Amount,
			&m.Timestamp,
			&m.Category,
			&m.Status,
			&m.SettlementReference,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment record", err)
		}
		records = append(records, mapping.ToDomainPaymentRecord(m))
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "failed reading payment rows", rows.Err())
	}
	return records, nil
}

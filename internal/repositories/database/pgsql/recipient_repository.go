package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	"github.com/streampay-labs/payrolld/internal/models"
	"github.com/streampay-labs/payrolld/internal/utils/mapping"
)

// PgxRecipientRepository persists workers and contractors.
type PgxRecipientRepository struct {
	BaseRepository
}

func newPgxRecipientRepository(pool *pgxpool.Pool) portsrepo.RecipientRepositoryFacade {
	return &PgxRecipientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecipientRepositoryFacade = (*PgxRecipientRepository)(nil)

const recipientColumns = `recipient_id, business_id, kind, name, email, role, wallet_reference, amount, status,
		created_at, created_by, last_updated_at, last_updated_by`

// SaveRecipient inserts or updates a recipient.
func (r *PgxRecipientRepository) SaveRecipient(ctx context.Context, recipient domain.Recipient) error {
	m := mapping.ToModelRecipient(recipient)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO recipients (`+recipientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (recipient_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			amount = EXCLUDED.amount,
			status = EXCLUDED.status,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`,
		m.RecipientID, m.BusinessID, m.Kind, m.Name, m.Email, m.Role, m.WalletReference, m.Amount, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save recipient "+m.RecipientID, err)
	}
	return nil
}

// SetWalletReference records the connected wallet and activates the recipient.
func (r *PgxRecipientRepository) SetWalletReference(ctx context.Context, businessID, recipientID, walletReference string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE recipients
		SET wallet_reference = $3, status = 'ACTIVE', last_updated_at = $4, last_updated_by = $2
		WHERE business_id = $1 AND recipient_id = $2;
	`, businessID, recipientID, walletReference, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set wallet for recipient "+recipientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ResetPaidStatuses returns Paid recipients to Active for the next cycle.
func (r *PgxRecipientRepository) ResetPaidStatuses(ctx context.Context, businessID string, updatedAt time.Time) error {
	_, err := r.Pool.Exec(ctx, `
		UPDATE recipients
		SET status = 'ACTIVE', last_updated_at = $2
		WHERE business_id = $1 AND status = 'PAID';
	`, businessID, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reset paid recipients for business "+businessID, err)
	}
	return nil
}

// FindRecipientByID retrieves a single recipient.
func (r *PgxRecipientRepository) FindRecipientByID(ctx context.Context, businessID, recipientID string) (*domain.Recipient, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+recipientColumns+` FROM recipients
		WHERE business_id = $1 AND recipient_id = $2;
	`, businessID, recipientID)
	return scanRecipient(row)
}

// FindRecipientsByIDs retrieves multiple recipients keyed by ID. Missing IDs
// are absent from the map.
func (r *PgxRecipientRepository) FindRecipientsByIDs(ctx context.Context, businessID string, recipientIDs []string) (map[string]domain.Recipient, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+recipientColumns+` FROM recipients
		WHERE business_id = $1 AND recipient_id = ANY($2);
	`, businessID, recipientIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load recipients for business "+businessID, err)
	}
	defer rows.Close()

	out := make(map[string]domain.Recipient, len(recipientIDs))
	for rows.Next() {
		recipient, err := scanRecipient(rows)
		if err != nil {
			return nil, err
		}
		out[recipient.RecipientID] = *recipient
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "failed reading recipient rows", rows.Err())
	}
	return out, nil
}

// ListRecipientsByBusiness lists recipients, optionally filtered by kind.
func (r *PgxRecipientRepository) ListRecipientsByBusiness(ctx context.Context, businessID string, kind *domain.RecipientKind) ([]domain.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM recipients WHERE business_id = $1`
	args := []any{businessID}
	if kind != nil {
		query += ` AND kind = $2`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY created_at ASC, recipient_id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recipients for business "+businessID, err)
	}
	defer rows.Close()

	recipients := make([]domain.Recipient, 0, 16)
	for rows.Next() {
		recipient, err := scanRecipient(rows)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, *recipient)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "failed reading recipient rows", rows.Err())
	}
	return recipients, nil
}

func scanRecipient(row pgx.Row) (*domain.Recipient, error) {
	var m models.Recipient
	err := row.Scan(
		&m.RecipientID,
		&m.BusinessID,
		&m.Kind,
		&m.Name,
		&m.Email,
		&m.Role,
		&m.WalletReference,
		&m.Amount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan recipient", err)
	}
	recipient := mapping.ToDomainRecipient(m)
	return &recipient, nil
}

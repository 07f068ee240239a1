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

// PgxScheduleRepository persists payroll schedule configurations. A partial
// unique index on (business_id) WHERE retired_at IS NULL enforces the single
// active config per business.
type PgxScheduleRepository struct {
	BaseRepository
}

func newPgxScheduleRepository(pool *pgxpool.Pool) portsrepo.ScheduleRepositoryFacade {
	return &PgxScheduleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

const scheduleColumns = `schedule_id, business_id, interval, day_rule, weekday, specific_date, start_date, next_payment_date, retired_at,
		created_at, created_by, last_updated_at, last_updated_by`

// SaveSchedule retires the current config and inserts the new one atomically.
func (r *PgxScheduleRepository) SaveSchedule(ctx context.Context, config domain.ScheduleConfig) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelScheduleConfig(config)
	_, err = tx.Exec(ctx, `
		UPDATE schedule_configs
		SET retired_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE business_id = $1 AND retired_at IS NULL;
	`, m.BusinessID, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to retire previous schedule for business "+m.BusinessID, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO schedule_configs (`+scheduleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`,
		m.ScheduleID, m.BusinessID, m.Interval, m.DayRule, m.Weekday, m.SpecificDate,
		m.StartDate, m.NextPaymentDate, m.RetiredAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert schedule "+m.ScheduleID, err)
	}

	return r.Commit(ctx, tx)
}

// FindActiveSchedule returns the business's current config.
func (r *PgxScheduleRepository) FindActiveSchedule(ctx context.Context, businessID string) (*domain.ScheduleConfig, error) {
	var m models.ScheduleConfig
	err := r.Pool.QueryRow(ctx, `
		SELECT `+scheduleColumns+` FROM schedule_configs
		WHERE business_id = $1 AND retired_at IS NULL;
	`, businessID).Scan(
		&m.ScheduleID,
		&m.BusinessID,
		&m.Interval,
		&m.DayRule,
		&m.Weekday,
		&m.SpecificDate,
		&m.StartDate,
		&m.NextPaymentDate,
		&m.RetiredAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to load schedule for business "+businessID, err)
	}
	config := mapping.ToDomainScheduleConfig(m)
	return &config, nil
}

// RetireSchedule soft-retires the active config without a replacement.
func (r *PgxScheduleRepository) RetireSchedule(ctx context.Context, businessID string, retiredAt time.Time, userID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE schedule_configs
		SET retired_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE business_id = $1 AND retired_at IS NULL;
	`, businessID, retiredAt, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to retire schedule for business "+businessID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

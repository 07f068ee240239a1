package repositories

import (
	"context"
	"time"

	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// ScheduleRepositoryFacade persists payroll schedule configurations. A
// business has at most one active config; superseded configs are soft-retired
// and kept for audit.
type ScheduleRepositoryFacade interface {
	// SaveSchedule retires the business's current config (if any) and
	// inserts the new one in a single transaction.
	SaveSchedule(ctx context.Context, config domain.ScheduleConfig) error

	// FindActiveSchedule returns the current config, or
	// apperrors.ErrNotFound when the business has none.
	FindActiveSchedule(ctx context.Context, businessID string) (*domain.ScheduleConfig, error)

	// RetireSchedule soft-retires the active config without a replacement.
	RetireSchedule(ctx context.Context, businessID string, retiredAt time.Time, userID string) error
}

package services

import (
	"context"

	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/streampay-labs/payrolld/internal/dto"
)

// ScheduleSvcFacade manages the business's payroll schedule configuration.
type ScheduleSvcFacade interface {
	// SaveSchedule validates the rule, computes the next payment date, and
	// replaces the active config (the previous one is soft-retired).
	// Committing a new config starts a fresh pay cycle: Paid recipients
	// return to Active.
	SaveSchedule(ctx context.Context, businessID string, req dto.SaveScheduleRequest, userID string) (*domain.ScheduleConfig, error)

	GetSchedule(ctx context.Context, businessID string) (*domain.ScheduleConfig, error)

	// RemoveSchedule soft-retires the active config.
	RemoveSchedule(ctx context.Context, businessID string, userID string) error
}

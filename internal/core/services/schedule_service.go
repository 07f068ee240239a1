package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/dto"
	"github.com/streampay-labs/payrolld/internal/utils/scheduling"
)

// scheduleService manages payroll schedule configurations.
type scheduleService struct {
	BaseService
	scheduleRepo  portsrepo.ScheduleRepositoryFacade
	recipientRepo portsrepo.RecipientRepositoryFacade
	now           func() time.Time
}

// NewScheduleService creates a schedule service.
func NewScheduleService(scheduleRepo portsrepo.ScheduleRepositoryFacade, recipientRepo portsrepo.RecipientRepositoryFacade) portssvc.ScheduleSvcFacade {
	return &scheduleService{
		scheduleRepo:  scheduleRepo,
		recipientRepo: recipientRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

var weekdaysByName = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// SaveSchedule validates the rule, computes the next payment date, and
// replaces the active config. Committing a new config starts a fresh pay
// cycle, so Paid recipients return to Active.
func (s *scheduleService) SaveSchedule(ctx context.Context, businessID string, req dto.SaveScheduleRequest, userID string) (*domain.ScheduleConfig, error) {
	rule := domain.ScheduleRule{
		Interval: domain.PaymentInterval(req.Interval),
		DayRule:  domain.DayRule(req.DayRule),
	}
	if req.Weekday != nil {
		weekday, ok := weekdaysByName[*req.Weekday]
		if !ok {
			return nil, apperrors.NewAppError(400, "unknown weekday "+*req.Weekday, apperrors.ErrValidation)
		}
		rule.Weekday = weekday
	} else if rule.DayRule == domain.WeekdayName {
		return nil, apperrors.NewAppError(400, "weekday is required for a weekday rule", apperrors.ErrValidation)
	}
	if req.SpecificDate != nil {
		rule.SpecificDate = *req.SpecificDate
	} else if rule.DayRule == domain.SpecificDayOfMonth {
		return nil, apperrors.NewAppError(400, "specificDate is required for a specific-day rule", apperrors.ErrValidation)
	}

	now := s.now()
	startDate := now
	if req.StartDate != nil && req.StartDate.After(now) {
		startDate = req.StartDate.UTC()
	}

	nextPaymentDate, err := scheduling.NextPaymentDate(rule, startDate)
	if err != nil {
		return nil, err
	}

	config := domain.ScheduleConfig{
		ScheduleID:      uuid.NewString(),
		BusinessID:      businessID,
		Rule:            rule,
		StartDate:       startDate,
		NextPaymentDate: nextPaymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.scheduleRepo.SaveSchedule(ctx, config); err != nil {
		s.LogError(ctx, err, "failed to save schedule", slog.String("business_id", businessID))
		return nil, err
	}

	// New config, new pay cycle.
	if err := s.recipientRepo.ResetPaidStatuses(ctx, businessID, now); err != nil {
		s.LogError(ctx, err, "failed to reset paid statuses for new cycle", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "schedule saved",
		slog.String("business_id", businessID),
		slog.String("schedule_id", config.ScheduleID),
		slog.Time("next_payment_date", nextPaymentDate))
	return &config, nil
}

// GetSchedule returns the business's active config.
func (s *scheduleService) GetSchedule(ctx context.Context, businessID string) (*domain.ScheduleConfig, error) {
	return s.scheduleRepo.FindActiveSchedule(ctx, businessID)
}

// RemoveSchedule soft-retires the active config.
func (s *scheduleService) RemoveSchedule(ctx context.Context, businessID string, userID string) error {
	if err := s.scheduleRepo.RetireSchedule(ctx, businessID, s.now(), userID); err != nil {
		return err
	}
	s.LogInfo(ctx, "schedule removed", slog.String("business_id", businessID))
	return nil
}

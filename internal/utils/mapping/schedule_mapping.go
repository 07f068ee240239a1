package mapping

import (
	"time"

	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/streampay-labs/payrolld/internal/models"
)

// ToModelScheduleConfig converts a domain ScheduleConfig to its model form.
func ToModelScheduleConfig(d domain.ScheduleConfig) models.ScheduleConfig {
	return models.ScheduleConfig{
		ScheduleID:      d.ScheduleID,
		BusinessID:      d.BusinessID,
		Interval:        string(d.Rule.Interval),
		DayRule:         string(d.Rule.DayRule),
		Weekday:         int(d.Rule.Weekday),
		SpecificDate:    d.Rule.SpecificDate,
		StartDate:       d.StartDate,
		NextPaymentDate: d.NextPaymentDate,
		RetiredAt:       d.RetiredAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainScheduleConfig converts a model ScheduleConfig to its domain form.
func ToDomainScheduleConfig(m models.ScheduleConfig) domain.ScheduleConfig {
	return domain.ScheduleConfig{
		ScheduleID: m.ScheduleID,
		BusinessID: m.BusinessID,
		Rule: domain.ScheduleRule{
			Interval:     domain.PaymentInterval(m.Interval),
			DayRule:      domain.DayRule(m.DayRule),
			Weekday:      time.Weekday(m.Weekday),
			SpecificDate: m.SpecificDate,
		},
		StartDate:       m.StartDate,
		NextPaymentDate: m.NextPaymentDate,
		RetiredAt:       m.RetiredAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

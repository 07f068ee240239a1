package domain

import "time"

// PaymentInterval is the recurrence of a payroll schedule.
type PaymentInterval string

const (
	Weekly  PaymentInterval = "WEEKLY"
	Monthly PaymentInterval = "MONTHLY"
)

// DayRule selects which day of the interval the payment lands on.
type DayRule string

const (
	// WeekdayName pays on a named weekday each week (weekly schedules only).
	WeekdayName DayRule = "WEEKDAY_NAME"
	// LastWorkingDay pays on the last non-weekend day of the month.
	LastWorkingDay DayRule = "LAST_WORKING_DAY"
	// SpecificDayOfMonth pays on a fixed day of month, rolled forward off weekends.
	SpecificDayOfMonth DayRule = "SPECIFIC_DAY_OF_MONTH"
)

// ScheduleRule is the pure input to the next-payment-date calculation.
type ScheduleRule struct {
	Interval     PaymentInterval `json:"interval"`
	DayRule      DayRule         `json:"dayRule"`
	Weekday      time.Weekday    `json:"weekday"`      // Used when DayRule is WeekdayName
	SpecificDate int             `json:"specificDate"` // 1..28; used when DayRule is SpecificDayOfMonth
}

// ScheduleConfig is a business account's payroll schedule. Exactly one config
// is active per business; previous configs are soft-retired for audit, never
// deleted.
type ScheduleConfig struct {
	ScheduleID      string       `json:"scheduleID"`
	BusinessID      string       `json:"businessID"`
	Rule            ScheduleRule `json:"rule"`
	StartDate       time.Time    `json:"startDate"`
	NextPaymentDate time.Time    `json:"nextPaymentDate"`
	RetiredAt       *time.Time   `json:"retiredAt,omitempty"`
	AuditFields
}

// IsActive reports whether this config is the business's current schedule.
func (s ScheduleConfig) IsActive() bool {
	return s.RetiredAt == nil
}

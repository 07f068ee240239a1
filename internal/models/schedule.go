package models

import "time"

// ScheduleConfig is the persisted payroll schedule. Retired rows stay in the
// table for audit.
type ScheduleConfig struct {
	ScheduleID      string     `json:"scheduleID"`
	BusinessID      string     `json:"businessID"`
	Interval        string     `json:"interval"`
	DayRule         string     `json:"dayRule"`
	Weekday         int        `json:"weekday"`
	SpecificDate    int        `json:"specificDate"`
	StartDate       time.Time  `json:"startDate"`
	NextPaymentDate time.Time  `json:"nextPaymentDate"`
	RetiredAt       *time.Time `json:"retiredAt"`
	AuditFields
}

package dto

import (
	"time"

	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// SaveScheduleRequest defines the payload for creating or replacing the
// business's payroll schedule.
type SaveScheduleRequest struct {
	Interval     string     `json:"interval" binding:"required,oneof=WEEKLY MONTHLY"`
	DayRule      string     `json:"dayRule" binding:"required,oneof=WEEKDAY_NAME LAST_WORKING_DAY SPECIFIC_DAY_OF_MONTH"`
	Weekday      *string    `json:"weekday,omitempty" binding:"omitempty,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	SpecificDate *int       `json:"specificDate,omitempty" binding:"omitempty,min=1,max=28"`
	StartDate    *time.Time `json:"startDate,omitempty"`
}

// ScheduleResponse defines the data returned for a schedule configuration.
type ScheduleResponse struct {
	ScheduleID      string     `json:"scheduleID"`
	Interval        string     `json:"interval"`
	DayRule         string     `json:"dayRule"`
	Weekday         string     `json:"weekday,omitempty"`
	SpecificDate    int        `json:"specificDate,omitempty"`
	StartDate       time.Time  `json:"startDate"`
	NextPaymentDate time.Time  `json:"nextPaymentDate"`
	RetiredAt       *time.Time `json:"retiredAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ToScheduleResponse converts a domain.ScheduleConfig to its response DTO.
func ToScheduleResponse(c *domain.ScheduleConfig) ScheduleResponse {
	resp := ScheduleResponse{
		ScheduleID:      c.ScheduleID,
		Interval:        string(c.Rule.Interval),
		DayRule:         string(c.Rule.DayRule),
		SpecificDate:    c.Rule.SpecificDate,
		StartDate:       c.StartDate,
		NextPaymentDate: c.NextPaymentDate,
		RetiredAt:       c.RetiredAt,
		CreatedAt:       c.CreatedAt,
	}
	if c.Rule.DayRule == domain.WeekdayName {
		resp.Weekday = c.Rule.Weekday.String()
	}
	return resp
}

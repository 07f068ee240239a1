// Package scheduling computes the next valid payment date for a payroll
// schedule. All functions are pure and deterministic.
package scheduling

import (
	"fmt"
	"time"

	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// NextPaymentDate returns the next valid payment date strictly governed by the
// rule, relative to reference. The result is always a weekday (Mon-Fri) and is
// never earlier than reference, regardless of which branch produced it.
func NextPaymentDate(rule domain.ScheduleRule, reference time.Time) (time.Time, error) {
	ref := truncateToDay(reference)

	var next time.Time
	switch rule.Interval {
	case domain.Weekly:
		if rule.DayRule != domain.WeekdayName {
			return time.Time{}, fmt.Errorf("%w: weekly interval requires a weekday day rule, got %s", apperrors.ErrConfiguration, rule.DayRule)
		}
		// "Next", never "today": a target matching the reference weekday
		// rolls a full week forward.
		days := (int(rule.Weekday) - int(ref.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		next = ref.AddDate(0, 0, days)

	case domain.Monthly:
		switch rule.DayRule {
		case domain.LastWorkingDay:
			// Last calendar day of the following month, then walk back
			// off the weekend.
			next = time.Date(ref.Year(), ref.Month()+2, 0, 0, 0, 0, 0, ref.Location())
			for isWeekend(next) {
				next = next.AddDate(0, 0, -1)
			}
		case domain.SpecificDayOfMonth:
			if rule.SpecificDate < 1 || rule.SpecificDate > 28 {
				return time.Time{}, fmt.Errorf("%w: specific date must be between 1 and 28, got %d", apperrors.ErrConfiguration, rule.SpecificDate)
			}
			// Same day next month, rolled forward off the weekend.
			next = time.Date(ref.Year(), ref.Month()+1, rule.SpecificDate, 0, 0, 0, 0, ref.Location())
			for isWeekend(next) {
				next = next.AddDate(0, 0, 1)
			}
		default:
			return time.Time{}, fmt.Errorf("%w: monthly interval requires last-working-day or specific-day rule, got %s", apperrors.ErrConfiguration, rule.DayRule)
		}

	default:
		return time.Time{}, fmt.Errorf("%w: unknown payment interval %s", apperrors.ErrConfiguration, rule.Interval)
	}

	// Post-condition enforcement: a weekday, on or after the reference, even
	// when month-boundary arithmetic above landed earlier or on a weekend.
	for isWeekend(next) || next.Before(ref) {
		next = next.AddDate(0, 0, 1)
	}

	return next, nil
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

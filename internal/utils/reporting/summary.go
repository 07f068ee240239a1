// Package reporting aggregates payment history into financial summary metrics
// in a single pass. All functions are pure; the input slice is never mutated.
package reporting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// Summarize folds the payment history into a ReportSummary. Records outside
// [from, to] are skipped when either bound is non-zero. The result depends only
// on the multiset of inputs, not their order.
func Summarize(history []domain.PaymentRecord, from, to time.Time) domain.ReportSummary {
	summary := domain.ReportSummary{
		TotalAmount:      decimal.Zero,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		TotalPayroll:     decimal.Zero,
		SuccessAmount:    decimal.Zero,
		FailedAmount:     decimal.Zero,
		PendingAmount:    decimal.Zero,
		Net:              decimal.Zero,
		Average:          decimal.Zero,
		AveragePayroll:   decimal.Zero,
	}

	for _, record := range history {
		if !from.IsZero() && record.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && record.Timestamp.After(to) {
			continue
		}

		summary.Count++
		summary.TotalAmount = summary.TotalAmount.Add(record.Amount)

		switch {
		case record.Category == domain.CategoryDeposit:
			summary.DepositCount++
			summary.TotalDeposits = summary.TotalDeposits.Add(record.Amount)
		case record.Category.Outflow():
			summary.WithdrawalCount++
			summary.TotalWithdrawals = summary.TotalWithdrawals.Add(record.Amount)
			if record.Category == domain.CategoryPayroll || record.Category == domain.CategoryContractorPayment {
				summary.PayrollCount++
				summary.TotalPayroll = summary.TotalPayroll.Add(record.Amount)
			}
		}

		switch record.Status {
		case domain.PaymentSuccess:
			summary.SuccessCount++
			summary.SuccessAmount = summary.SuccessAmount.Add(record.Amount)
		case domain.PaymentFailed:
			summary.FailedCount++
			summary.FailedAmount = summary.FailedAmount.Add(record.Amount)
		case domain.PaymentPending:
			summary.PendingCount++
			summary.PendingAmount = summary.PendingAmount.Add(record.Amount)
		}

		if summary.PeriodStart.IsZero() || record.Timestamp.Before(summary.PeriodStart) {
			summary.PeriodStart = record.Timestamp
		}
		if summary.PeriodEnd.IsZero() || record.Timestamp.After(summary.PeriodEnd) {
			summary.PeriodEnd = record.Timestamp
		}
	}

	summary.Net = summary.TotalDeposits.Sub(summary.TotalWithdrawals)
	if summary.Count > 0 {
		summary.Average = summary.TotalAmount.Div(decimal.NewFromInt(int64(summary.Count)))
	}
	if summary.PayrollCount > 0 {
		summary.AveragePayroll = summary.TotalPayroll.Div(decimal.NewFromInt(int64(summary.PayrollCount)))
	}

	return summary
}

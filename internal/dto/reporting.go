package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// SummaryParams holds the query parameters for the financial summary report.
type SummaryParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// SummaryResponse is the financial summary over a payment history range.
type SummaryResponse struct {
	Count            int             `json:"count"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	TotalPayroll     decimal.Decimal `json:"totalPayroll"`
	DepositCount     int             `json:"depositCount"`
	WithdrawalCount  int             `json:"withdrawalCount"`
	PayrollCount     int             `json:"payrollCount"`
	SuccessCount     int             `json:"successCount"`
	FailedCount      int             `json:"failedCount"`
	PendingCount     int             `json:"pendingCount"`
	SuccessAmount    decimal.Decimal `json:"successAmount"`
	PendingAmount    decimal.Decimal `json:"pendingAmount"`
	Net              decimal.Decimal `json:"net"`
	Average          decimal.Decimal `json:"average"`
	AveragePayroll   decimal.Decimal `json:"averagePayroll"`
	PeriodStart      time.Time       `json:"periodStart"`
	PeriodEnd        time.Time       `json:"periodEnd"`
}

// ToSummaryResponse converts a domain.ReportSummary to its response DTO.
func ToSummaryResponse(s *domain.ReportSummary) SummaryResponse {
	return SummaryResponse{
		Count:            s.Count,
		TotalAmount:      s.TotalAmount,
		TotalDeposits:    s.TotalDeposits,
		TotalWithdrawals: s.TotalWithdrawals,
		TotalPayroll:     s.TotalPayroll,
		DepositCount:     s.DepositCount,
		WithdrawalCount:  s.WithdrawalCount,
		PayrollCount:     s.PayrollCount,
		SuccessCount:     s.SuccessCount,
		FailedCount:      s.FailedCount,
		PendingCount:     s.PendingCount,
		SuccessAmount:    s.SuccessAmount,
		PendingAmount:    s.PendingAmount,
		Net:              s.Net,
		Average:          s.Average,
		AveragePayroll:   s.AveragePayroll,
		PeriodStart:      s.PeriodStart,
		PeriodEnd:        s.PeriodEnd,
	}
}

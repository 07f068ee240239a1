package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportSummary is the single-pass aggregation of a payment history slice.
type ReportSummary struct {
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
	FailedAmount     decimal.Decimal `json:"failedAmount"`
	PendingAmount    decimal.Decimal `json:"pendingAmount"`
	Net              decimal.Decimal `json:"net"`           // deposits - withdrawals
	Average          decimal.Decimal `json:"average"`       // total / count, zero-safe
	AveragePayroll   decimal.Decimal `json:"averagePayroll"`
	PeriodStart      time.Time       `json:"periodStart"`
	PeriodEnd        time.Time       `json:"periodEnd"`
}

package domain

import "github.com/shopspring/decimal"

// RunStatus is the state of a payroll run. Pending is the only non-terminal
// state; a run transitions Pending -> Success or Pending -> Failed exactly once.
type RunStatus string

const (
	RunSuccess RunStatus = "SUCCESS"
	RunFailed  RunStatus = "FAILED"
	RunPending RunStatus = "PENDING"
)

// Terminal reports whether the status is final.
func (s RunStatus) Terminal() bool {
	return s == RunSuccess || s == RunFailed
}

// RecipientSnapshot freezes the recipient details as they were at disbursement
// time, so later edits to the recipient do not rewrite history.
type RecipientSnapshot struct {
	RecipientID     string          `json:"recipientID"`
	Name            string          `json:"name"`
	WalletReference string          `json:"walletReference"`
	Amount          decimal.Decimal `json:"amount"`
}

// PayrollRun is one disbursement attempt covering one or more recipients.
// It is immutable once created (status excepted for Pending resolution) and is
// the single source of truth for whether a batch happened.
// Invariant: TotalAmount equals the sum of Recipients[].Amount.
type PayrollRun struct {
	RunID               string              `json:"runID"`
	BusinessID          string              `json:"businessID"`
	TotalAmount         decimal.Decimal     `json:"totalAmount"`
	CurrencyCode        string              `json:"currencyCode"`
	Status              RunStatus           `json:"status"`
	SettlementReference string              `json:"settlementReference"`
	Period              string              `json:"period"` // e.g. "March 2026"
	Recipients          []RecipientSnapshot `json:"recipients"`
	AuditFields
}

// SnapshotTotal sums the snapshot amounts; it must equal TotalAmount.
func (r PayrollRun) SnapshotTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range r.Recipients {
		total = total.Add(s.Amount)
	}
	return total
}

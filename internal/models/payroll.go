package models

import "github.com/shopspring/decimal"

// RunStatus is the persisted state of a payroll run.
type RunStatus string

const (
	RunSuccess RunStatus = "SUCCESS"
	RunFailed  RunStatus = "FAILED"
	RunPending RunStatus = "PENDING"
)

// RecipientSnapshot is the frozen recipient line stored with the run (JSONB).
type RecipientSnapshot struct {
	RecipientID     string          `json:"recipientID"`
	Name            string          `json:"name"`
	WalletReference string          `json:"walletReference"`
	Amount          decimal.Decimal `json:"amount"`
}

// PayrollRun is the persisted form of a disbursement attempt.
type PayrollRun struct {
	RunID               string              `json:"runID"`
	BusinessID          string              `json:"businessID"`
	TotalAmount         decimal.Decimal     `json:"totalAmount"`
	CurrencyCode        string              `json:"currencyCode"`
	Status              RunStatus           `json:"status"`
	SettlementReference string              `json:"settlementReference"`
	Period              string              `json:"period"`
	Recipients          []RecipientSnapshot `json:"recipients"`
	AuditFields
}

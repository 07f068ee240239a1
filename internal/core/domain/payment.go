package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentCategory is the fixed taxonomy used by the report aggregator.
type PaymentCategory string

const (
	CategoryDeposit           PaymentCategory = "DEPOSIT"
	CategoryWithdrawal        PaymentCategory = "WITHDRAWAL"
	CategoryPayroll           PaymentCategory = "PAYROLL"
	CategoryContractorPayment PaymentCategory = "CONTRACTOR_PAYMENT"
)

// Outflow reports whether the category moves money out of the business.
// Payroll and contractor payments are withdrawals for reporting purposes.
func (c PaymentCategory) Outflow() bool {
	return c == CategoryWithdrawal || c == CategoryPayroll || c == CategoryContractorPayment
}

// PaymentStatus mirrors the run outcome on the flattened history entry.
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
	PaymentPending PaymentStatus = "PENDING"
)

// PaymentRecord is an append-only, flattened ledger-history entry. One record
// exists per run recipient; for every Success run the matching records sum to
// the run's TotalAmount.
type PaymentRecord struct {
	PaymentID           string          `json:"paymentID"`
	BusinessID          string          `json:"businessID"`
	RunID               string          `json:"runID"`
	RecipientID         string          `json:"recipientID"`
	RecipientName       string          `json:"recipientName"`
	Amount              decimal.Decimal `json:"amount"`
	Timestamp           time.Time       `json:"timestamp"`
	Category            PaymentCategory `json:"category"`
	Status              PaymentStatus   `json:"status"`
	SettlementReference string          `json:"settlementReference"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the persisted state of a payment history entry.
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
	PaymentPending PaymentStatus = "PENDING"
)

// PaymentRecord is the persisted, flattened history entry.
type PaymentRecord struct {
	PaymentID           string          `json:"paymentID"`
	BusinessID          string          `json:"businessID"`
	RunID               string          `json:"runID"`
	RecipientID         string          `json:"recipientID"`
	RecipientName       string          `json:"recipientName"`
	Amount              decimal.Decimal `json:"amount"`
	Timestamp           time.Time       `json:"timestamp"`
	Category            string          `json:"category"`
	Status              PaymentStatus   `json:"status"`
	SettlementReference string          `json:"settlementReference"`
}

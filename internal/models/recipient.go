package models

import "github.com/shopspring/decimal"

// RecipientKind distinguishes workers from contractors.
type RecipientKind string

const (
	Worker     RecipientKind = "WORKER"
	Contractor RecipientKind = "CONTRACTOR"
)

// RecipientStatus is the persisted eligibility state.
type RecipientStatus string

const (
	Invited RecipientStatus = "INVITED"
	Active  RecipientStatus = "ACTIVE"
	Paid    RecipientStatus = "PAID"
)

// Recipient is the persisted form of a worker or contractor.
type Recipient struct {
	RecipientID     string          `json:"recipientID"`
	BusinessID      string          `json:"businessID"`
	Kind            RecipientKind   `json:"kind"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Role            string          `json:"role"`
	WalletReference string          `json:"walletReference"`
	Amount          decimal.Decimal `json:"amount"`
	Status          RecipientStatus `json:"status"`
	AuditFields
}

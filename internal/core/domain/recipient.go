package domain

import "github.com/shopspring/decimal"

// RecipientKind distinguishes salaried workers from ad-hoc contractors.
type RecipientKind string

const (
	Worker     RecipientKind = "WORKER"
	Contractor RecipientKind = "CONTRACTOR"
)

// RecipientStatus is the payment-eligibility state of a recipient.
type RecipientStatus string

const (
	// Invited recipients have not connected a wallet yet and cannot be paid.
	Invited RecipientStatus = "INVITED"
	// Active recipients have a wallet reference and are eligible for disbursement.
	Active RecipientStatus = "ACTIVE"
	// Paid is set only after the ledger confirms a Success outcome for the
	// recipient in the current cycle. Never set speculatively.
	Paid RecipientStatus = "PAID"
)

// Recipient is a worker or contractor owned by a business account.
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

// Payable reports whether the recipient can be included in a disbursement.
func (r Recipient) Payable() bool {
	return r.Status == Active && r.WalletReference != "" && r.Amount.IsPositive()
}

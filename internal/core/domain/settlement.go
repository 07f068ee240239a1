package domain

import "github.com/shopspring/decimal"

// TransferStatus is the settlement network's view of a submitted transfer.
type TransferStatus string

const (
	TransferPending   TransferStatus = "PENDING"
	TransferConfirmed TransferStatus = "CONFIRMED"
	TransferReverted  TransferStatus = "REVERTED"
)

// TransferInstruction is one (wallet, amount) leg of a batched transfer.
type TransferInstruction struct {
	WalletReference string          `json:"walletReference"`
	Amount          decimal.Decimal `json:"amount"`
}

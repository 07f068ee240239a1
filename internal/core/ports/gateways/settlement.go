package gateways

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// SettlementGateway is the outbound port to the external settlement network.
// Submission returns a transaction reference immediately; confirmation is
// observed separately through GetTransferStatus. Once submitted, a transfer
// cannot be cancelled, only polled to resolution.
type SettlementGateway interface {
	// SubmitBatchTransfer submits one batched transfer covering every
	// instruction. The total must equal the sum of instruction amounts.
	SubmitBatchTransfer(ctx context.Context, payerWallet string, instructions []domain.TransferInstruction, total decimal.Decimal) (string, error)

	// SubmitSingleTransfer submits an ad-hoc transfer to one wallet.
	SubmitSingleTransfer(ctx context.Context, payerWallet, recipientWallet string, amount decimal.Decimal) (string, error)

	// GetTransferStatus reports the network's view of a submitted transfer.
	GetTransferStatus(ctx context.Context, transactionRef string) (domain.TransferStatus, error)

	// GetAccountBalance returns the payer's spendable balance on the network.
	GetAccountBalance(ctx context.Context, wallet string) (decimal.Decimal, error)

	// Ready reports whether a signing session is available. Disbursements
	// fail validation before any external call when it is not.
	Ready(ctx context.Context) error
}

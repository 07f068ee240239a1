package services

import (
	"context"

	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/streampay-labs/payrolld/internal/dto"
)

// RecipientSvcFacade manages workers and contractors.
type RecipientSvcFacade interface {
	// CreateRecipient invites a worker or contractor. Invited recipients
	// cannot be paid until a wallet is connected.
	CreateRecipient(ctx context.Context, businessID string, kind domain.RecipientKind, req dto.CreateRecipientRequest, userID string) (*domain.Recipient, error)

	ListRecipients(ctx context.Context, businessID string, kind *domain.RecipientKind) ([]domain.Recipient, error)

	// ConnectWallet records the recipient's wallet reference and advances
	// Invited -> Active.
	ConnectWallet(ctx context.Context, businessID, recipientID string, req dto.ConnectWalletRequest, userID string) (*domain.Recipient, error)
}

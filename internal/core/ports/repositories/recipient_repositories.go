package repositories

import (
	"context"
	"time"

	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// RecipientReader defines read operations for workers and contractors.
type RecipientReader interface {
	FindRecipientByID(ctx context.Context, businessID, recipientID string) (*domain.Recipient, error)

	// FindRecipientsByIDs retrieves multiple recipients keyed by ID.
	// Missing IDs are simply absent from the map.
	FindRecipientsByIDs(ctx context.Context, businessID string, recipientIDs []string) (map[string]domain.Recipient, error)

	ListRecipientsByBusiness(ctx context.Context, businessID string, kind *domain.RecipientKind) ([]domain.Recipient, error)
}

// RecipientWriter defines write operations for workers and contractors.
type RecipientWriter interface {
	SaveRecipient(ctx context.Context, recipient domain.Recipient) error

	// SetWalletReference records the connected wallet and activates the
	// recipient (Invited -> Active).
	SetWalletReference(ctx context.Context, businessID, recipientID, walletReference string, updatedAt time.Time) error

	// ResetPaidStatuses returns all Paid recipients of the business to
	// Active at the start of a new pay cycle.
	ResetPaidStatuses(ctx context.Context, businessID string, updatedAt time.Time) error
}

// RecipientRepositoryFacade combines the recipient interfaces.
type RecipientRepositoryFacade interface {
	RecipientReader
	RecipientWriter
}

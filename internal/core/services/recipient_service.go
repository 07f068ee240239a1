package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/dto"
)

// recipientService manages workers and contractors.
type recipientService struct {
	BaseService
	recipientRepo portsrepo.RecipientRepositoryFacade
	now           func() time.Time
}

// NewRecipientService creates a recipient service.
func NewRecipientService(recipientRepo portsrepo.RecipientRepositoryFacade) portssvc.RecipientSvcFacade {
	return &recipientService{
		recipientRepo: recipientRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// CreateRecipient invites a worker or contractor. Invited recipients cannot
// be paid until a wallet is connected.
func (s *recipientService) CreateRecipient(ctx context.Context, businessID string, kind domain.RecipientKind, req dto.CreateRecipientRequest, userID string) (*domain.Recipient, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "recipient amount must be positive", apperrors.ErrValidation)
	}

	now := s.now()
	recipient := domain.Recipient{
		RecipientID: uuid.NewString(),
		BusinessID:  businessID,
		Kind:        kind,
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		Amount:      req.Amount,
		Status:      domain.Invited,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.recipientRepo.SaveRecipient(ctx, recipient); err != nil {
		s.LogError(ctx, err, "failed to save recipient", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "recipient invited",
		slog.String("business_id", businessID),
		slog.String("recipient_id", recipient.RecipientID),
		slog.String("kind", string(kind)))
	return &recipient, nil
}

// ListRecipients lists the business's recipients, optionally one kind.
func (s *recipientService) ListRecipients(ctx context.Context, businessID string, kind *domain.RecipientKind) ([]domain.Recipient, error) {
	return s.recipientRepo.ListRecipientsByBusiness(ctx, businessID, kind)
}

// ConnectWallet records the recipient's wallet and advances Invited -> Active.
func (s *recipientService) ConnectWallet(ctx context.Context, businessID, recipientID string, req dto.ConnectWalletRequest, userID string) (*domain.Recipient, error) {
	if err := s.recipientRepo.SetWalletReference(ctx, businessID, recipientID, req.WalletReference, s.now()); err != nil {
		return nil, err
	}
	recipient, err := s.recipientRepo.FindRecipientByID(ctx, businessID, recipientID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "recipient wallet connected",
		slog.String("business_id", businessID),
		slog.String("recipient_id", recipientID))
	return recipient, nil
}

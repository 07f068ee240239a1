package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// CreateRecipientRequest invites a worker or contractor. The recipient stays
// Invited (and unpayable) until a wallet is connected.
type CreateRecipientRequest struct {
	Name   string          `json:"name" binding:"required"`
	Email  string          `json:"email" binding:"required,email"`
	Role   string          `json:"role" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ConnectWalletRequest links a wallet reference to an invited recipient.
type ConnectWalletRequest struct {
	WalletReference string `json:"walletReference" binding:"required"`
}

// RecipientResponse defines the data returned for a recipient.
type RecipientResponse struct {
	RecipientID     string          `json:"recipientID"`
	Kind            string          `json:"kind"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Role            string          `json:"role"`
	WalletReference string          `json:"walletReference,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToRecipientResponse converts a domain.Recipient to its response DTO.
func ToRecipientResponse(r *domain.Recipient) RecipientResponse {
	return RecipientResponse{
		RecipientID:     r.RecipientID,
		Kind:            string(r.Kind),
		Name:            r.Name,
		Email:           r.Email,
		Role:            r.Role,
		WalletReference: r.WalletReference,
		Amount:          r.Amount,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
	}
}

// ToRecipientResponses converts a slice of recipients to response DTOs.
func ToRecipientResponses(recipients []domain.Recipient) []RecipientResponse {
	responses := make([]RecipientResponse, len(recipients))
	for i := range recipients {
		responses[i] = ToRecipientResponse(&recipients[i])
	}
	return responses
}

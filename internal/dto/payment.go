package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// ListPaymentsParams holds the query parameters for listing payment history.
type ListPaymentsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status" binding:"omitempty,oneof=SUCCESS FAILED PENDING"`
	Category  *string `form:"category" binding:"omitempty,oneof=DEPOSIT WITHDRAWAL PAYROLL CONTRACTOR_PAYMENT"`
}

// PaymentResponse defines the data returned for a payment history entry.
type PaymentResponse struct {
	PaymentID           string          `json:"paymentID"`
	RunID               string          `json:"runID"`
	RecipientID         string          `json:"recipientID,omitempty"`
	RecipientName       string          `json:"recipientName,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	Timestamp           time.Time       `json:"timestamp"`
	Category            string          `json:"category"`
	Status              string          `json:"status"`
	SettlementReference string          `json:"settlementReference"`
}

// ListPaymentsResponse is a paginated page of payment history.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.PaymentRecord to its response DTO.
func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:           p.PaymentID,
		RunID:               p.RunID,
		RecipientID:         p.RecipientID,
		RecipientName:       p.RecipientName,
		Amount:              p.Amount,
		Timestamp:           p.Timestamp,
		Category:            string(p.Category),
		Status:              string(p.Status),
		SettlementReference: p.SettlementReference,
	}
}

// ToPaymentResponses converts a slice of records to response DTOs.
func ToPaymentResponses(records []domain.PaymentRecord) []PaymentResponse {
	responses := make([]PaymentResponse, len(records))
	for i := range records {
		responses[i] = ToPaymentResponse(&records[i])
	}
	return responses
}

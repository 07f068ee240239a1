package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/core/domain"
)

// DisburseRequest selects the recipients of a batched disbursement.
type DisburseRequest struct {
	RecipientIDs []string `json:"recipientIDs" binding:"required,min=1,dive,required"`
}

// SingleDisburseRequest pays one recipient ad hoc.
type SingleDisburseRequest struct {
	RecipientID string `json:"recipientID" binding:"required"`
}

// RecipientSnapshotResponse is one frozen recipient line of a run.
type RecipientSnapshotResponse struct {
	RecipientID     string          `json:"recipientID"`
	Name            string          `json:"name"`
	WalletReference string          `json:"walletReference"`
	Amount          decimal.Decimal `json:"amount"`
}

// RunResponse defines the data returned for a payroll run.
type RunResponse struct {
	RunID               string                      `json:"runID"`
	TotalAmount         decimal.Decimal             `json:"totalAmount"`
	CurrencyCode        string                      `json:"currencyCode"`
	Status              string                      `json:"status"`
	SettlementReference string                      `json:"settlementReference"`
	Period              string                      `json:"period"`
	Recipients          []RecipientSnapshotResponse `json:"recipients,omitempty"`
	CreatedAt           time.Time                   `json:"createdAt"`
}

// ListRunsParams holds the query parameters for listing runs.
type ListRunsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListRunsResponse is a paginated page of runs.
type ListRunsResponse struct {
	Runs      []RunResponse `json:"runs"`
	NextToken *string       `json:"nextToken,omitempty"`
}

// ToRunResponse converts a domain.PayrollRun to its response DTO.
func ToRunResponse(run *domain.PayrollRun) RunResponse {
	recipients := make([]RecipientSnapshotResponse, len(run.Recipients))
	for i, s := range run.Recipients {
		recipients[i] = RecipientSnapshotResponse{
			RecipientID:     s.RecipientID,
			Name:            s.Name,
			WalletReference: s.WalletReference,
			Amount:          s.Amount,
		}
	}
	return RunResponse{
		RunID:               run.RunID,
		TotalAmount:         run.TotalAmount,
		CurrencyCode:        run.CurrencyCode,
		Status:              string(run.Status),
		SettlementReference: run.SettlementReference,
		Period:              run.Period,
		Recipients:          recipients,
		CreatedAt:           run.CreatedAt,
	}
}

// Package httprpc implements the settlement gateway port over the settlement
// service's JSON HTTP API.
package httprpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/streampay-labs/payrolld/internal/core/ports/gateways"
)

// Client talks to the settlement service. Submission returns a transaction
// reference; the caller polls GetTransferStatus for resolution.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ gateways.SettlementGateway = (*Client)(nil)

// NewClient builds a settlement client for the given base URL.
func NewClient(baseURL, apiKey string, requestTimeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type transferInstructionPayload struct {
	Wallet string `json:"wallet"`
	Amount string `json:"amount"`
}

type batchTransferRequest struct {
	PayerWallet  string                       `json:"payerWallet"`
	Instructions []transferInstructionPayload `json:"instructions"`
	Total        string                       `json:"total"`
}

type singleTransferRequest struct {
	PayerWallet     string `json:"payerWallet"`
	RecipientWallet string `json:"recipientWallet"`
	Amount          string `json:"amount"`
}

type transferResponse struct {
	TransactionRef string `json:"transactionRef"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type balanceResponse struct {
	Balance string `json:"balance"`
}

type readyResponse struct {
	Ready  bool   `json:"ready"`
	Reason string `json:"reason"`
}

// SubmitBatchTransfer submits one batched transfer covering every instruction.
func (c *Client) SubmitBatchTransfer(ctx context.Context, payerWallet string, instructions []domain.TransferInstruction, total decimal.Decimal) (string, error) {
	payload := batchTransferRequest{
		PayerWallet:  payerWallet,
		Instructions: make([]transferInstructionPayload, 0, len(instructions)),
		Total:        total.String(),
	}
	for _, instruction := range instructions {
		payload.Instructions = append(payload.Instructions, transferInstructionPayload{
			Wallet: instruction.WalletReference,
			Amount: instruction.Amount.String(),
		})
	}

	var resp transferResponse
	if err := c.post(ctx, "/v1/transfers/batch", payload, &resp); err != nil {
		return "", err
	}
	if resp.TransactionRef == "" {
		return "", apperrors.NewAppError(502, "settlement service returned an empty transaction reference", apperrors.ErrSettlement)
	}
	return resp.TransactionRef, nil
}

// SubmitSingleTransfer submits an ad-hoc transfer to one wallet.
func (c *Client) SubmitSingleTransfer(ctx context.Context, payerWallet, recipientWallet string, amount decimal.Decimal) (string, error) {
	payload := singleTransferRequest{
		PayerWallet:     payerWallet,
		RecipientWallet: recipientWallet,
		Amount:          amount.String(),
	}
	var resp transferResponse
	if err := c.post(ctx, "/v1/transfers", payload, &resp); err != nil {
		return "", err
	}
	if resp.TransactionRef == "" {
		return "", apperrors.NewAppError(502, "settlement service returned an empty transaction reference", apperrors.ErrSettlement)
	}
	return resp.TransactionRef, nil
}

// GetTransferStatus reports the network's view of a submitted transfer.
func (c *Client) GetTransferStatus(ctx context.Context, transactionRef string) (domain.TransferStatus, error) {
	var resp statusResponse
	if err := c.get(ctx, "/v1/transfers/"+transactionRef, &resp); err != nil {
		return "", err
	}
	switch domain.TransferStatus(resp.Status) {
	case domain.TransferPending, domain.TransferConfirmed, domain.TransferReverted:
		return domain.TransferStatus(resp.Status), nil
	default:
		return "", apperrors.NewAppError(502, "settlement service reported unknown transfer status "+resp.Status, apperrors.ErrSettlement)
	}
}

// GetAccountBalance returns the payer's spendable balance on the network.
func (c *Client) GetAccountBalance(ctx context.Context, wallet string) (decimal.Decimal, error) {
	var resp balanceResponse
	if err := c.get(ctx, "/v1/accounts/"+wallet+"/balance", &resp); err != nil {
		return decimal.Zero, err
	}
	balance, err := decimal.NewFromString(resp.Balance)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(502, "settlement service returned unparseable balance "+resp.Balance, err)
	}
	return balance, nil
}

// Ready reports whether a signing session is available on the settlement side.
func (c *Client) Ready(ctx context.Context) error {
	var resp readyResponse
	if err := c.get(ctx, "/v1/session/ready", &resp); err != nil {
		return err
	}
	if !resp.Ready {
		reason := resp.Reason
		if reason == "" {
			reason = "no signing session available"
		}
		return apperrors.NewAppError(503, "settlement gateway not ready: "+reason, apperrors.ErrSettlement)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode settlement request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewAppError(500, "failed to build settlement request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperrors.NewAppError(500, "failed to build settlement request", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewAppError(502, "settlement request failed", fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperrors.NewAppError(502, "failed to read settlement response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewAppError(resp.StatusCode,
			fmt.Sprintf("settlement service returned %d for %s %s", resp.StatusCode, req.Method, req.URL.Path),
			apperrors.ErrSettlement)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return apperrors.NewAppError(502, "failed to decode settlement response", err)
	}
	return nil
}

package httprpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", 5*time.Second)
}

func TestSubmitBatchTransfer(t *testing.T) {
	var captured batchTransferRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transfers/batch", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(transferResponse{TransactionRef: "tx-abc-123"})
	})

	instructions := []domain.TransferInstruction{
		{WalletReference: "wallet-1", Amount: decimal.NewFromInt(200)},
		{WalletReference: "wallet-2", Amount: decimal.NewFromInt(300)},
	}
	ref, err := client.SubmitBatchTransfer(context.Background(), "payer-wallet", instructions, decimal.NewFromInt(500))

	require.NoError(t, err)
	assert.Equal(t, "tx-abc-123", ref)
	assert.Equal(t, "payer-wallet", captured.PayerWallet)
	assert.Equal(t, "500", captured.Total)
	require.Len(t, captured.Instructions, 2)
	assert.Equal(t, "wallet-1", captured.Instructions[0].Wallet)
	assert.Equal(t, "200", captured.Instructions[0].Amount)
}

func TestSubmitBatchTransferEmptyReference(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(transferResponse{})
	})

	_, err := client.SubmitBatchTransfer(context.Background(), "payer-wallet", nil, decimal.Zero)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSettlement)
}

func TestSubmitSingleTransfer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transfers", r.URL.Path)
		var req singleTransferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "recipient-wallet", req.RecipientWallet)
		assert.Equal(t, "75.5", req.Amount)
		json.NewEncoder(w).Encode(transferResponse{TransactionRef: "tx-single-1"})
	})

	ref, err := client.SubmitSingleTransfer(context.Background(), "payer-wallet", "recipient-wallet", decimal.RequireFromString("75.5"))

	require.NoError(t, err)
	assert.Equal(t, "tx-single-1", ref)
}

func TestGetTransferStatus(t *testing.T) {
	tests := []struct {
		name     string
		reported string
		want     domain.TransferStatus
		wantErr  bool
	}{
		{name: "pending", reported: "PENDING", want: domain.TransferPending},
		{name: "confirmed", reported: "CONFIRMED", want: domain.TransferConfirmed},
		{name: "reverted", reported: "REVERTED", want: domain.TransferReverted},
		{name: "unknown status rejected", reported: "EXPLODED", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/transfers/tx-1", r.URL.Path)
				json.NewEncoder(w).Encode(statusResponse{Status: tt.reported})
			})

			status, err := client.GetTransferStatus(context.Background(), "tx-1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestGetAccountBalance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts/payer-wallet/balance", r.URL.Path)
		json.NewEncoder(w).Encode(balanceResponse{Balance: "1234.56"})
	})

	balance, err := client.GetAccountBalance(context.Background(), "payer-wallet")

	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("1234.56")))
}

func TestReady(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(readyResponse{Ready: true})
		})
		assert.NoError(t, client.Ready(context.Background()))
	})

	t.Run("not ready", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(readyResponse{Ready: false, Reason: "signer offline"})
		})
		err := client.Ready(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrSettlement)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Message, "signer offline")
	})
}

func TestServerErrorSurfacesStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetTransferStatus(context.Background(), "tx-1")

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}

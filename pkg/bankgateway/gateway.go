// Package bankgateway is a read-only client for the bank-transfer gateway's
// transaction lookup API.
package bankgateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/hngvu/payfastacy/pkg/httpclient"
)

const TransactionEndpoint = "/transactions/"

type BankGateway interface {
	GetTransaction(ctx context.Context, transactionID string) (TransactionResponse, error)
}

type bankGateway struct {
	client httpclient.HTTPClient
	config Config
}

func NewBankGateway(cfg Config, client httpclient.HTTPClient) BankGateway {
	return &bankGateway{config: cfg, client: client}
}

func (g *bankGateway) GetTransaction(ctx context.Context, transactionID string) (TransactionResponse, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + g.config.APIKey,
		"Content-Type":  "application/json",
	}

	resp, err := g.client.Get(ctx, g.config.BaseURL+TransactionEndpoint+transactionID, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return TransactionResponse{}, ErrTimeout
		}

		return TransactionResponse{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return TransactionResponse{}, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var response TransactionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return TransactionResponse{}, ErrMalformedResponse
	}

	if response.Error != 0 {
		return TransactionResponse{}, ErrMalformedResponse
	}

	return response, nil
}

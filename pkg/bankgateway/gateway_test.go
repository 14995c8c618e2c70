package bankgateway_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/hngvu/payfastacy/pkg/bankgateway"
	"github.com/hngvu/payfastacy/pkg/mocks"
	"github.com/stretchr/testify/assert"
)

func TestBankGateway_GetTransaction(t *testing.T) {
	cfg := bankgateway.Config{
		BaseURL: "https://api.bank.test/v2",
		Timeout: 30 * time.Second,
		APIKey:  "secret-key",
	}

	lookupURL := "https://api.bank.test/v2/transactions/FT24001234567"
	headers := map[string]string{
		"Authorization": "Bearer secret-key",
		"Content-Type":  "application/json",
	}

	t.Run("successful lookup", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := bankgateway.NewBankGateway(cfg, mockClient)

		body := `{
			"error": 0,
			"data": {
				"id": "12345",
				"tid": "FT24001234567",
				"description": "Chuyen tien ND abc123XYZ99 tks",
				"amount": 50000,
				"when": "2024-01-15 10:30:00"
			}
		}`

		response := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Get", context.Background(), lookupURL, headers).Return(response, nil)

		resp, err := gw.GetTransaction(context.Background(), "FT24001234567")

		assert.NoError(t, err)
		assert.Equal(t, "FT24001234567", resp.Data.TID)
		assert.Equal(t, int64(50000), resp.Data.Amount)
		mockClient.AssertExpectations(t)
	})

	t.Run("non-2xx response carries the upstream status", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := bankgateway.NewBankGateway(cfg, mockClient)

		response := &http.Response{
			StatusCode: 404,
			Body:       io.NopCloser(strings.NewReader(`{"error":1,"message":"transaction not found"}`)),
		}

		mockClient.On("Get", context.Background(), lookupURL, headers).Return(response, nil)

		_, err := gw.GetTransaction(context.Background(), "FT24001234567")

		var apiErr *bankgateway.APIError
		assert.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "transaction not found")
	})

	t.Run("timeout", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := bankgateway.NewBankGateway(cfg, mockClient)

		mockClient.On("Get", context.Background(), lookupURL,
			headers).Return((*http.Response)(nil), context.DeadlineExceeded)

		_, err := gw.GetTransaction(context.Background(), "FT24001234567")

		assert.ErrorIs(t, err, bankgateway.ErrTimeout)
	})

	t.Run("network error propagates", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := bankgateway.NewBankGateway(cfg, mockClient)

		networkErr := errors.New("connection refused")

		mockClient.On("Get", context.Background(), lookupURL,
			headers).Return((*http.Response)(nil), networkErr)

		_, err := gw.GetTransaction(context.Background(), "FT24001234567")

		assert.ErrorIs(t, err, networkErr)
	})

	t.Run("invalid JSON payload", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := bankgateway.NewBankGateway(cfg, mockClient)

		response := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"error": 0, "data":`)),
		}

		mockClient.On("Get", context.Background(), lookupURL, headers).Return(response, nil)

		_, err := gw.GetTransaction(context.Background(), "FT24001234567")

		assert.ErrorIs(t, err, bankgateway.ErrMalformedResponse)
	})

	t.Run("unsuccessful payload on 200", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		gw := bankgateway.NewBankGateway(cfg, mockClient)

		response := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"error": 93, "message": "expired key"}`)),
		}

		mockClient.On("Get", context.Background(), lookupURL, headers).Return(response, nil)

		_, err := gw.GetTransaction(context.Background(), "FT24001234567")

		assert.ErrorIs(t, err, bankgateway.ErrMalformedResponse)
	})
}

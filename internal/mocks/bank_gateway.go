package mocks

import (
	"context"

	"github.com/hngvu/payfastacy/pkg/bankgateway"
	"github.com/stretchr/testify/mock"
)

type BankGateway struct {
	mock.Mock
}

func (m *BankGateway) GetTransaction(ctx context.Context, transactionID string) (bankgateway.TransactionResponse, error) {
	args := m.Called(ctx, transactionID)
	return args.Get(0).(bankgateway.TransactionResponse), args.Error(1)
}

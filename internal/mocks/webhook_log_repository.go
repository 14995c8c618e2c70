package mocks

import (
	"context"

	"github.com/hngvu/payfastacy/internal/model"
	"github.com/stretchr/testify/mock"
)

type WebhookLogRepository struct {
	mock.Mock
}

func (m *WebhookLogRepository) Create(ctx context.Context, log *model.WebhookLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *WebhookLogRepository) MarkMatched(ctx context.Context, id int64, paymentID int64) error {
	args := m.Called(ctx, id, paymentID)
	return args.Error(0)
}

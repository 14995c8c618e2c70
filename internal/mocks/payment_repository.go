package mocks

import (
	"context"
	"time"

	"github.com/hngvu/payfastacy/internal/model"
	"github.com/hngvu/payfastacy/internal/repository"
	"github.com/stretchr/testify/mock"
)

type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *PaymentRepository) ExistsByRef(ctx context.Context, ref string) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}

func (m *PaymentRepository) ExistsByContent(ctx context.Context, content string) (bool, error) {
	args := m.Called(ctx, content)
	return args.Bool(0), args.Error(1)
}

func (m *PaymentRepository) FindPendingByAmount(ctx context.Context, amount int64) ([]model.Payment, error) {
	args := m.Called(ctx, amount)
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *PaymentRepository) MarkPaid(ctx context.Context, id int64, txnID string, paidAt time.Time) error {
	args := m.Called(ctx, id, txnID, paidAt)
	return args.Error(0)
}

func (m *PaymentRepository) Search(ctx context.Context, filter repository.PaymentFilter) ([]model.Payment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Payment), args.Error(1)
}

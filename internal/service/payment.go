package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hngvu/payfastacy/internal/metrics"
	"github.com/hngvu/payfastacy/internal/model"
	"github.com/hngvu/payfastacy/internal/repository"
	"github.com/hngvu/payfastacy/pkg/token"
	"go.uber.org/zap"
)

// Reconciliation is interpreted at a fixed UTC+7 offset regardless of the
// server's local zone; search date ranges and the paid timestamp follow it.
var bankZone = time.FixedZone("UTC+7", 7*60*60)

const (
	statusPaid   = "paid"
	statusUnpaid = "unpaid"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (CreatePaymentResponse, error)
	ProcessCallback(ctx context.Context, cmd ProcessCallbackCommand) (ProcessCallbackResponse, error)
	SearchPayments(ctx context.Context, query SearchPaymentsQuery) (SearchPaymentsResponse, error)
}

type payment struct {
	paymentRepo repository.PaymentRepository
	webhookRepo repository.WebhookLogRepository
	txManager   repository.TxManager
	generator   *token.Generator
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewPaymentService(paymentRepo repository.PaymentRepository, webhookRepo repository.WebhookLogRepository,
	txManager repository.TxManager, generator *token.Generator, m *metrics.Metrics,
	logger *zap.Logger) PaymentService {
	return &payment{paymentRepo: paymentRepo, webhookRepo: webhookRepo, txManager: txManager,
		generator: generator, metrics: m, logger: logger}
}

func (p *payment) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (CreatePaymentResponse, error) {
	exists, err := p.paymentRepo.ExistsByRef(ctx, cmd.Ref)
	if err != nil {
		p.logger.Error("Failed to check payment reference", zap.Error(err), zap.String("ref", cmd.Ref))
		return CreatePaymentResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if exists {
		p.logger.Warn("Duplicate payment reference", zap.String("ref", cmd.Ref))
		return CreatePaymentResponse{}, NewServiceError(ErrCodeDuplicateReference, ErrDuplicateReference)
	}

	content, err := p.generator.Generate(ctx, p.paymentRepo.ExistsByContent)
	if err != nil {
		if errors.Is(err, token.ErrExhausted) {
			p.logger.Error("Content generation exhausted", zap.String("ref", cmd.Ref))
			return CreatePaymentResponse{}, NewServiceError(ErrCodeGenerationExhausted, err)
		}

		p.logger.Error("Content generation failed", zap.Error(err), zap.String("ref", cmd.Ref))
		return CreatePaymentResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	record := model.Payment{
		Amount:    cmd.Amount,
		Ref:       cmd.Ref,
		Content:   content,
		Status:    false,
		CreatedAt: time.Now(),
	}

	err = p.paymentRepo.Create(ctx, &record)
	if err != nil {
		// The pre-check has a race window; the unique index on ref rejects
		// the losing insert and it is reported the same way.
		if errors.Is(err, repository.ErrPaymentDuplicate) {
			p.logger.Warn("Duplicate payment detected on insert", zap.String("ref", cmd.Ref))
			return CreatePaymentResponse{}, NewServiceError(ErrCodeDuplicateReference, err)
		}

		p.logger.Error("Failed to create payment", zap.Error(err), zap.String("ref", cmd.Ref))
		return CreatePaymentResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	p.metrics.PaymentsCreated.Inc()
	p.logger.Info("Payment created",
		zap.Int64("paymentID", record.ID),
		zap.String("ref", cmd.Ref),
		zap.Int64("amount", cmd.Amount))

	return CreatePaymentResponse{Content: content, Ref: cmd.Ref, Amount: cmd.Amount}, nil
}

func (p *payment) ProcessCallback(ctx context.Context, cmd ProcessCallbackCommand) (ProcessCallbackResponse, error) {
	p.logger.Info("Webhook received",
		zap.String("sourceIP", cmd.Meta.SourceIP),
		zap.String("origin", cmd.Meta.Origin),
		zap.String("userAgent", cmd.Meta.UserAgent),
		zap.String("rawBody", cmd.Meta.RawBody),
		zap.Int64("amount", cmd.Amount),
		zap.String("referenceCode", cmd.ReferenceCode))

	auditLog := model.WebhookLog{
		SourceIP:      cmd.Meta.SourceIP,
		Origin:        cmd.Meta.Origin,
		UserAgent:     cmd.Meta.UserAgent,
		RawBody:       cmd.Meta.RawBody,
		Amount:        cmd.Amount,
		ReferenceCode: cmd.ReferenceCode,
		Matched:       false,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// Audit is independent of the match outcome: a failed write is logged
	// and reconciliation continues.
	if err := p.webhookRepo.Create(ctx, &auditLog); err != nil {
		p.logger.Error("Failed to persist webhook audit log", zap.Error(err))
	}

	pending, err := p.paymentRepo.FindPendingByAmount(ctx, cmd.Amount)
	if err != nil {
		p.logger.Error("Failed to load pending payments", zap.Error(err), zap.Int64("amount", cmd.Amount))
		return ProcessCallbackResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	matched := p.matchByContent(pending, cmd.Content)
	if matched == nil {
		// Redelivered webhooks land here too: the already-paid record is
		// excluded by the pending filter, so a duplicate notification is a
		// no-op by construction.
		p.metrics.CallbacksTotal.WithLabelValues("unmatched").Inc()
		p.logger.Warn("No pending payment matches webhook",
			zap.Int64("amount", cmd.Amount),
			zap.String("referenceCode", cmd.ReferenceCode))
		return ProcessCallbackResponse{}, NewServiceError(ErrCodeNoMatchingPayment, ErrNoMatchingPayment)
	}

	paidAt := time.Now().In(bankZone)

	err = p.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := p.paymentRepo.MarkPaid(ctx, matched.ID, cmd.ReferenceCode, paidAt); err != nil {
			return err
		}

		if auditLog.ID != 0 {
			return p.webhookRepo.MarkMatched(ctx, auditLog.ID, matched.ID)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			// A concurrent delivery won the update; report it like any other
			// unmatched callback.
			p.metrics.CallbacksTotal.WithLabelValues("unmatched").Inc()
			p.logger.Warn("Payment already reconciled by concurrent callback",
				zap.Int64("paymentID", matched.ID))
			return ProcessCallbackResponse{}, NewServiceError(ErrCodeNoMatchingPayment, ErrNoMatchingPayment)
		}

		p.metrics.CallbacksTotal.WithLabelValues("error").Inc()
		p.logger.Error("Failed to reconcile payment",
			zap.Error(err),
			zap.Int64("paymentID", matched.ID),
			zap.String("referenceCode", cmd.ReferenceCode))
		return ProcessCallbackResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	p.metrics.CallbacksTotal.WithLabelValues("matched").Inc()
	p.logger.Info("Payment reconciled",
		zap.Int64("paymentID", matched.ID),
		zap.String("ref", matched.Ref),
		zap.String("txnID", cmd.ReferenceCode),
		zap.Int64("amount", cmd.Amount))

	return ProcessCallbackResponse{
		PaymentID: matched.ID,
		Ref:       matched.Ref,
		TxnID:     cmd.ReferenceCode,
		Amount:    cmd.Amount,
	}, nil
}

// matchByContent picks the first pending record whose content token appears
// anywhere in the memo. With equal amounts and two tokens in one memo the
// first row in id order wins; tightening that to a conflict is a deliberate
// non-change to stay compatible with the gateway's existing behavior.
func (p *payment) matchByContent(pending []model.Payment, memo string) *model.Payment {
	for i := range pending {
		if strings.Contains(memo, pending[i].Content) {
			return &pending[i]
		}
	}

	return nil
}

func (p *payment) SearchPayments(ctx context.Context, query SearchPaymentsQuery) (SearchPaymentsResponse, error) {
	filter := repository.PaymentFilter{Ref: query.Ref, Content: query.Content}

	switch query.Status {
	case statusPaid:
		paid := true
		filter.Status = &paid
	case statusUnpaid:
		unpaid := false
		filter.Status = &unpaid
	}

	if query.From != "" {
		from, err := parseDate(query.From)
		if err != nil {
			return SearchPaymentsResponse{}, NewServiceError(ErrCodeValidationFailed, err)
		}
		filter.From = &from
	}

	if query.To != "" {
		to, err := parseDate(query.To)
		if err != nil {
			return SearchPaymentsResponse{}, NewServiceError(ErrCodeValidationFailed, err)
		}
		end := to.Add(24*time.Hour - time.Second)
		filter.To = &end
	}

	payments, err := p.paymentRepo.Search(ctx, filter)
	if err != nil {
		p.logger.Error("Failed to search payments", zap.Error(err))
		return SearchPaymentsResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	views := make([]PaymentView, 0, len(payments))
	for _, record := range payments {
		views = append(views, toView(record))
	}

	return SearchPaymentsResponse{Payments: views, Total: len(views)}, nil
}

// parseDate reads a YYYY-MM-DD calendar date at midnight UTC+7.
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, bankZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return t, nil
}

func toView(record model.Payment) PaymentView {
	view := PaymentView{
		ID:        record.ID,
		Amount:    record.Amount,
		Ref:       record.Ref,
		Content:   record.Content,
		Status:    statusUnpaid,
		CreatedAt: record.CreatedAt.In(bankZone).Format(time.RFC3339),
	}

	if record.Status {
		view.Status = statusPaid
	}

	if record.TxnID != nil {
		view.TxnID = *record.TxnID
	}

	if record.UpdatedAt != nil {
		view.UpdatedAt = record.UpdatedAt.In(bankZone).Format(time.RFC3339)
	}

	return view
}

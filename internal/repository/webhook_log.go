package repository

import (
	"context"
	"time"

	"github.com/hngvu/payfastacy/internal/model"
	"gorm.io/gorm"
)

type WebhookLogRepository interface {
	Create(ctx context.Context, log *model.WebhookLog) error
	MarkMatched(ctx context.Context, id int64, paymentID int64) error
}

type WebhookLog struct {
	db *gorm.DB
}

func NewWebhookLogRepository(db *gorm.DB) WebhookLogRepository {
	return &WebhookLog{db: db}
}

func (r *WebhookLog) Create(ctx context.Context, log *model.WebhookLog) error {
	return GetTx(ctx, r.db).Create(log).Error
}

func (r *WebhookLog) MarkMatched(ctx context.Context, id int64, paymentID int64) error {
	return GetTx(ctx, r.db).Model(&model.WebhookLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_id": paymentID,
			"matched":    true,
			"updated_at": time.Now(),
		}).Error
}

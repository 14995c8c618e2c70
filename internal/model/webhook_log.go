package model

import "time"

// WebhookLog is the audit record for every inbound gateway notification,
// written regardless of whether the callback matched a pending payment.
type WebhookLog struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	PaymentID     *int64    `gorm:"column:payment_id;null"`
	SourceIP      string    `gorm:"column:source_ip;type:varchar(45)"`
	Origin        string    `gorm:"column:origin;type:varchar(255)"`
	UserAgent     string    `gorm:"column:user_agent;type:varchar(255)"`
	RawBody       string    `gorm:"column:raw_body;type:text"`
	Amount        int64     `gorm:"column:amount"`
	ReferenceCode string    `gorm:"column:reference_code;type:varchar(64)"`
	Matched       bool      `gorm:"column:matched;not null;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}

func (WebhookLog) TableName() string {
	return "webhook_log"
}

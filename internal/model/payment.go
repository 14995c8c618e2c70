package model

import "time"

// Payment is a pending or reconciled bank-transfer request. Uniqueness of
// ref, content and txn_id is enforced by the database so concurrent inserts
// and callbacks cannot race past the application-level checks.
type Payment struct {
	ID        int64      `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TxnID     *string    `gorm:"column:txn_id;type:varchar(64);uniqueIndex:idx_payment_txn_id"`
	Amount    int64      `gorm:"column:amount;not null;<-:create"`
	Ref       string     `gorm:"column:ref;type:varchar(255);not null;uniqueIndex:idx_payment_ref;<-:create"`
	Content   string     `gorm:"column:content;type:varchar(64);not null;uniqueIndex:idx_payment_content;<-:create"`
	Status    bool       `gorm:"column:status;not null;default:false"`
	CreatedAt time.Time  `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt *time.Time `gorm:"column:updated_at;type:timestamp;null;autoUpdateTime:false"`
}

func (Payment) TableName() string {
	return "payment"
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/hngvu/payfastacy/internal/model"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("PAYMENT_NOT_FOUND")
var ErrPaymentDuplicate = errors.New("PAYMENT_DUPLICATE")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

// PaymentFilter composes the optional search predicates with logical AND.
// Nil fields are not applied.
type PaymentFilter struct {
	Ref     string
	Content string
	Status  *bool
	From    *time.Time
	To      *time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	ExistsByRef(ctx context.Context, ref string) (bool, error)
	ExistsByContent(ctx context.Context, content string) (bool, error)
	FindPendingByAmount(ctx context.Context, amount int64) ([]model.Payment, error)
	MarkPaid(ctx context.Context, id int64, txnID string, paidAt time.Time) error
	Search(ctx context.Context, filter PaymentFilter) ([]model.Payment, error)
}

type Payment struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &Payment{db: db}
}

func (p *Payment) Create(ctx context.Context, payment *model.Payment) error {
	db := GetTx(ctx, p.db)
	err := db.Create(payment).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrPaymentDuplicate
	}

	return err
}

func (p *Payment) ExistsByRef(ctx context.Context, ref string) (bool, error) {
	return p.exists(ctx, "ref = ?", ref)
}

func (p *Payment) ExistsByContent(ctx context.Context, content string) (bool, error) {
	return p.exists(ctx, "content = ?", content)
}

func (p *Payment) exists(ctx context.Context, query string, arg string) (bool, error) {
	var count int64

	err := GetTx(ctx, p.db).Model(&model.Payment{}).Where(query, arg).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (p *Payment) FindPendingByAmount(ctx context.Context, amount int64) ([]model.Payment, error) {
	var payments []model.Payment

	err := GetTx(ctx, p.db).
		Where("status = ? AND amount = ?", false, amount).
		Order("id ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// MarkPaid flips exactly one pending record to paid. The status guard makes
// redelivered callbacks a no-op: a second update on the same row affects
// zero rows and reports ErrNoRowsAffected.
func (p *Payment) MarkPaid(ctx context.Context, id int64, txnID string, paidAt time.Time) error {
	db := GetTx(ctx, p.db)

	result := db.Model(&model.Payment{}).
		Where("id = ? AND status = ?", id, false).
		Updates(map[string]interface{}{
			"txn_id":     txnID,
			"status":     true,
			"updated_at": paidAt,
		})

	if result.Error != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(result.Error, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrPaymentDuplicate
		}

		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (p *Payment) Search(ctx context.Context, filter PaymentFilter) ([]model.Payment, error) {
	db := GetTx(ctx, p.db).Model(&model.Payment{})

	if filter.Ref != "" {
		db = db.Where("ref LIKE ?", "%"+filter.Ref+"%")
	}

	if filter.Content != "" {
		db = db.Where("content LIKE ?", "%"+filter.Content+"%")
	}

	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}

	if filter.From != nil {
		db = db.Where("created_at >= ?", *filter.From)
	}

	if filter.To != nil {
		db = db.Where("created_at <= ?", *filter.To)
	}

	var payments []model.Payment
	if err := db.Order("created_at ASC").Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}

package service

type CreatePaymentResponse struct {
	Content string `json:"content"`
	Ref     string `json:"ref"`
	Amount  int64  `json:"amount"`
}

type ProcessCallbackResponse struct {
	PaymentID int64  `json:"payment_id"`
	Ref       string `json:"ref"`
	TxnID     string `json:"txn_id"`
	Amount    int64  `json:"amount"`
}

type SearchPaymentsResponse struct {
	Payments []PaymentView `json:"payments"`
	Total    int           `json:"total"`
}

type PaymentView struct {
	ID        int64  `json:"id"`
	TxnID     string `json:"txn_id,omitempty"`
	Amount    int64  `json:"amount"`
	Ref       string `json:"ref"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

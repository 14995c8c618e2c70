package bankgateway

type TransactionResponse struct {
	Error   int         `json:"error"`
	Message string      `json:"message,omitempty"`
	Data    Transaction `json:"data,omitempty"`
}

type Transaction struct {
	ID          string `json:"id"`
	TID         string `json:"tid"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	When        string `json:"when"`
	BankSubAcc  string `json:"bank_sub_acc_id"`
}

package v1

type CreatePaymentRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Ref    string `json:"ref" validate:"required"`
}

// CallbackRequest is the gateway's webhook payload. Content is the free-text
// transfer memo that embeds the payment token.
type CallbackRequest struct {
	Content        string `json:"content" validate:"required"`
	TransferAmount int64  `json:"transferAmount" validate:"required,gt=0"`
	ReferenceCode  string `json:"referenceCode" validate:"required"`
}

type SearchPaymentsRequest struct {
	Ref     string `query:"ref"`
	Content string `query:"content"`
	Status  string `query:"status" validate:"omitempty,oneof=paid unpaid"`
	From    string `query:"from" validate:"omitempty,dateonly"`
	To      string `query:"to" validate:"omitempty,dateonly"`
}

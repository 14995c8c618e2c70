package service

type CreatePaymentCommand struct {
	Amount int64
	Ref    string
}

// WebhookMeta carries the request metadata persisted for audit alongside
// every callback, matched or not.
type WebhookMeta struct {
	SourceIP  string
	Origin    string
	UserAgent string
	RawBody   string
}

type ProcessCallbackCommand struct {
	// Content is the gateway's free-text transfer memo. The bank wraps the
	// payment token in arbitrary surrounding text, so matching is substring
	// based.
	Content       string
	Amount        int64
	ReferenceCode string
	Meta          WebhookMeta
}

type SearchPaymentsQuery struct {
	Ref     string
	Content string
	// Status is "paid", "unpaid" or empty for no status filter.
	Status string
	// From and To are inclusive calendar dates (YYYY-MM-DD) over createdAt,
	// interpreted at UTC+7.
	From string
	To   string
}

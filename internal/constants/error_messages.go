package constants

const (
	ErrCodeDuplicateReference  = "DUPLICATE_REFERENCE"
	ErrCodeGenerationExhausted = "GENERATION_EXHAUSTED"
	ErrCodeNoMatchingPayment   = "NO_MATCHING_PAYMENT"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeUpstreamError       = "UPSTREAM_ERROR"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgDuplicateReference  = "payment reference already exists"
	ErrMsgGenerationExhausted = "could not allocate a unique payment content"
	ErrMsgNoMatchingPayment   = "no pending payment matches the notification"
	ErrMsgValidationFailed    = "request validation failed"
	ErrMsgUnauthorized        = "invalid or missing api key"
	ErrMsgUpstreamError       = "payment gateway returned an error"
	ErrMsgInternalError       = "Internal server error"
	ErrMsgInvalidRequestBody  = "failed to parse request body"
)

var errorMessages = map[string]string{
	ErrCodeDuplicateReference:  ErrMsgDuplicateReference,
	ErrCodeGenerationExhausted: ErrMsgGenerationExhausted,
	ErrCodeNoMatchingPayment:   ErrMsgNoMatchingPayment,
	ErrCodeValidationFailed:    ErrMsgValidationFailed,
	ErrCodeUnauthorized:        ErrMsgUnauthorized,
	ErrCodeUpstreamError:       ErrMsgUpstreamError,
	ErrCodeInternalError:       ErrMsgInternalError,
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeUnauthorized:
		return 401
	case ErrCodeNoMatchingPayment:
		return 404
	case ErrCodeDuplicateReference:
		return 409
	case ErrCodeValidationFailed:
		return 422
	case ErrCodeUpstreamError:
		return 502
	case ErrCodeGenerationExhausted, ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}

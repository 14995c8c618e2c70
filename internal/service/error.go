package service

import "errors"

const (
	ErrCodeDuplicateReference  = "DUPLICATE_REFERENCE"
	ErrCodeGenerationExhausted = "GENERATION_EXHAUSTED"
	ErrCodeNoMatchingPayment   = "NO_MATCHING_PAYMENT"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeDatabase            = "DATABASE_ERROR"
)

var (
	ErrDuplicateReference = errors.New("DUPLICATE_REFERENCE")
	ErrNoMatchingPayment  = errors.New("NO_MATCHING_PAYMENT")
	ErrDatabase           = errors.New("DATABASE_ERROR")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

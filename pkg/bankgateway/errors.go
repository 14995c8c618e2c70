package bankgateway

import (
	"errors"
	"fmt"
)

var ErrTimeout = errors.New("GATEWAY_TIMEOUT")
var ErrMalformedResponse = errors.New("GATEWAY_MALFORMED_RESPONSE")

// APIError carries a non-2xx upstream response so the caller can forward the
// upstream status verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
}

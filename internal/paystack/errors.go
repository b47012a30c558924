package paystack

import (
	"errors"
	"fmt"
)

// ErrUpstreamUnavailable means no response was received from the API at all.
var ErrUpstreamUnavailable = errors.New("payment api is unavailable")

// ErrResponseTooLarge means the API answered with more than the client's
// MaxBodySize. The body is discarded rather than relayed truncated.
var ErrResponseTooLarge = errors.New("payment api response is too large")

// StatusError is returned when the API answered with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	// ContentType is the upstream Content-Type header, possibly empty.
	ContentType string
	Body        []byte
}

// Error keeps the wording callers have historically been shown.
func (e *StatusError) Error() string {
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// AsStatusError unwraps err into a *StatusError when possible.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

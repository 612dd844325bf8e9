package progressapi

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse indicates the backend answered with a body that could
// not be decoded or that lacks required fields.
var ErrMalformedResponse = errors.New("malformed response from progress backend")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("progress backend error: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("progress backend error: HTTP %d: %s", e.StatusCode, e.Body)
}

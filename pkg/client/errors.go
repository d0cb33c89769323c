package client

import (
	"errors"
	"fmt"
)

// ErrNoRefreshToken is returned when a 401 cannot be recovered because
// the session holds no refresh token to present.
var ErrNoRefreshToken = errors.New("no refresh token")

// HTTPError represents a non-2xx HTTP response from the API. Message is
// the server's `message` field, or an operation-specific fallback when
// the body carried none.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

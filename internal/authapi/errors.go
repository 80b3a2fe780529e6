package authapi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a transport-level failure of a backend call. StatusCode and
// Header are populated when the backend answered with a non-2xx HTTP status;
// both stay zero-valued for connection-level failures. The JWKS handler
// relies on StatusCode to recognize a 302 surfaced as an error.
type APIError struct {
	Path       string
	StatusCode int
	Header     http.Header
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("authapi: %s returned status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("authapi: %s call failed: %v", e.Path, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError unwraps err into an *APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

package github

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cli/go-gh/v2/pkg/api"
)

// TransportError reports a failed request: the connection broke or the
// server answered with an unexpected status.
type TransportError struct {
	Page int
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch releases page %d: %v", e.Page, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthError reports that GitHub rejected the access token.
type AuthError struct {
	Page       int
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("GitHub rejected the token (HTTP %d) on releases page %d: %v", e.StatusCode, e.Page, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// FormatError reports a response body that is not valid JSON.
type FormatError struct {
	Page int
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("failed to decode releases page %d: %v", e.Page, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// requestError maps an error from the REST client to its error kind
func requestError(page int, err error) error {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) &&
		(httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden) {
		return &AuthError{Page: page, StatusCode: httpErr.StatusCode, Err: err}
	}
	return &TransportError{Page: page, Err: err}
}

package contentful

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/allisson/coursecatalog/internal/errors"
)

// ErrInvalidConfig is returned by NewClient when space or token are missing.
var ErrInvalidConfig = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid content api client config")

// APIError is returned for every failed remote call. StatusCode is 0 when
// no HTTP response was received.
type APIError struct {
	StatusCode int
	// ID is the remote error id (e.g. "NotFound", "AccessTokenInvalid").
	ID        string
	Message   string
	RequestID string
	Err       error
}

// Error implements error.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("content api request failed: %s", e.Message)
	}
	return fmt.Sprintf("content api error (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap exposes the transport error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is lets 401 and 404 responses match the application error kinds.
func (e *APIError) Is(target error) bool {
	switch target {
	case apperrors.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case apperrors.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// StatusCode extracts the HTTP status of an APIError in err's chain.
// It returns 0 when err carries no APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// errorBody is the JSON body sent by the API on failures.
type errorBody struct {
	Sys       Sys    `json:"sys"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

func newStatusError(statusCode int, body errorBody) *APIError {
	message := body.Message
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &APIError{
		StatusCode: statusCode,
		ID:         body.Sys.ID,
		Message:    message,
		RequestID:  body.RequestID,
	}
}

func newTransportError(err error) *APIError {
	return &APIError{
		Message: err.Error(),
		Err:     err,
	}
}

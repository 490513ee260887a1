// Package errors holds the error kinds shared by the content and settings
// domains. Use cases wrap these sentinels; handlers map them to status codes.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the content API has no matching entry.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means a request parameter was rejected before any
	// remote call was made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized means the content API rejected an access token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotImplemented marks routes that exist without a backing read.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnavailable means no space is connected yet.
	ErrUnavailable = errors.New("unavailable")
)

// kinds is the match order used by Kind.
var kinds = []error{
	ErrNotFound,
	ErrInvalidInput,
	ErrUnauthorized,
	ErrNotImplemented,
	ErrUnavailable,
}

// Kind returns the first shared sentinel found in err's tree, or nil.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Wrap adds context to err while keeping it matchable. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is is errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

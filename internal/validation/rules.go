// Package validation provides custom validation rules for the application.
package validation

import (
	"errors"
	"regexp"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/coursecatalog/internal/errors"
)

var (
	// resourceIDRegex matches remote space, entry and content type ids.
	resourceIDRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Required is validation.Required reporting message instead of the default text.
func Required(message string) validation.Rule {
	return validation.Required.Error(message)
}

// Message returns the user-facing text of a rule error, or err.Error() for
// any other error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ruleErr validation.Error
	if errors.As(err, &ruleErr) {
		return ruleErr.Message()
	}
	return err.Error()
}

// ResourceID validates a remote resource id (space, entry or content type).
var ResourceID = validation.NewStringRuleWithError(
	func(s string) bool {
		return resourceIDRegex.MatchString(s)
	},
	validation.NewError("validation_resource_id", "must be a valid resource id"),
)

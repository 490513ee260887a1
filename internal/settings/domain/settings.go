// Package domain defines the credential set persisted by the settings page and
// the field-scoped outcome of validating it.
package domain

// Field names a settings form field that can carry errors.
type Field string

// Form fields, in required-check order.
const (
	FieldSpace Field = "space"
	FieldCDA   Field = "cda"
	FieldCPA   Field = "cpa"
)

// RequiredFields lists the fields checked for presence, in report order.
var RequiredFields = []Field{FieldSpace, FieldCDA, FieldCPA}

// Validation messages shown next to the form fields.
const (
	MessageRequired           = "This field is required"
	MessageDeliveryKeyInvalid = "Your Delivery API key is invalid."
	MessagePreviewKeyInvalid  = "Your Preview API key is invalid."
	MessageSpaceNotFound      = "This space does not exist."
	MessageUnexpectedPrefix   = "Something went wrong: "
)

// Settings cookie attributes.
const (
	CookieName = "theExampleAppSettings"
	// CookieMaxAge is one year in seconds.
	CookieMaxAge = 31536000
)

// CredentialSet is the connection settings chosen by a visitor. It is stored
// as-is in the settings cookie.
type CredentialSet struct {
	Space             string `json:"space"`
	CDA               string `json:"cda"`
	CPA               string `json:"cpa"`
	EditorialFeatures bool   `json:"editorialFeatures"`
}

// SubmitInput holds the raw form values of a settings submission.
type SubmitInput struct {
	Space             string
	CDA               string
	CPA               string
	EditorialFeatures string
}

// CredentialSet returns the submitted values with the checkbox coerced.
func (in SubmitInput) CredentialSet() CredentialSet {
	return CredentialSet{
		Space:             in.Space,
		CDA:               in.CDA,
		CPA:               in.CPA,
		EditorialFeatures: ParseEditorialFeatures(in.EditorialFeatures),
	}
}

// ParseEditorialFeatures coerces a checkbox value to a boolean: a present
// checkbox is true whatever its value, an absent one is false.
func ParseEditorialFeatures(value string) bool {
	return value != ""
}

// FieldError is a message attached to a single form field.
type FieldError struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// FieldErrors groups messages by field, keeping append order within a field
// and the order in which fields first received an error.
type FieldErrors struct {
	order    []Field
	messages map[Field][]string
}

// Add appends message to field.
func (e *FieldErrors) Add(field Field, message string) {
	if e.messages == nil {
		e.messages = make(map[Field][]string)
	}
	if _, ok := e.messages[field]; !ok {
		e.order = append(e.order, field)
	}
	e.messages[field] = append(e.messages[field], message)
}

// Append adds every error in errs.
func (e *FieldErrors) Append(errs ...FieldError) {
	for _, err := range errs {
		e.Add(err.Field, err.Message)
	}
}

// For returns the messages recorded for field.
func (e *FieldErrors) For(field Field) []string {
	if e == nil {
		return nil
	}
	return e.messages[field]
}

// Has reports whether field has at least one message.
func (e *FieldErrors) Has(field Field) bool {
	return len(e.For(field)) > 0
}

// Len returns the total number of messages.
func (e *FieldErrors) Len() int {
	if e == nil {
		return 0
	}
	n := 0
	for _, messages := range e.messages {
		n += len(messages)
	}
	return n
}

// Empty reports whether no message was recorded.
func (e *FieldErrors) Empty() bool {
	return e.Len() == 0
}

// List flattens the errors, grouped by field in first-seen order.
func (e *FieldErrors) List() []FieldError {
	if e == nil {
		return nil
	}
	list := make([]FieldError, 0, e.Len())
	for _, field := range e.order {
		for _, message := range e.messages[field] {
			list = append(list, FieldError{Field: field, Message: message})
		}
	}
	return list
}

// Map returns a copy of the errors keyed by field name.
func (e *FieldErrors) Map() map[string][]string {
	out := make(map[string][]string)
	if e == nil {
		return out
	}
	for field, messages := range e.messages {
		out[string(field)] = append([]string(nil), messages...)
	}
	return out
}

// ValidationOutcome is the result of a settings submission.
type ValidationOutcome struct {
	Settings  CredentialSet
	Errors    *FieldErrors
	HasErrors bool
	Success   bool
}

// PendingOutcome is the outcome of a form that was not validated: no errors
// and no success.
func PendingOutcome(settings CredentialSet) *ValidationOutcome {
	return &ValidationOutcome{Settings: settings, Errors: &FieldErrors{}}
}

// NewOutcome builds the outcome for settings and errs. Success holds exactly
// when errs is empty.
func NewOutcome(settings CredentialSet, errs *FieldErrors) *ValidationOutcome {
	if errs == nil {
		errs = &FieldErrors{}
	}
	return &ValidationOutcome{
		Settings:  settings,
		Errors:    errs,
		HasErrors: !errs.Empty(),
		Success:   errs.Empty(),
	}
}

package quote

import "fmt"

// FieldError reports an update that names an unknown field or carries a value of the wrong type.
// It is a request error, not a validation failure: domain values are never checked on update.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

func newFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

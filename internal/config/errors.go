package config

import (
	"fmt"

	"github.com/juju/errors"
)

// FieldError reports a problem with a single configuration field. Several of
// these are collected into a FieldErrors before being surfaced as the single
// fatal error LoadConfig returns.
type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", fe.Field, fe.Message)
}

// FieldErrors collects every FieldError found while validating a CellConfig,
// so a misconfigured cell reports all of its problems at once instead of
// stopping at the first one.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	switch len(fe) {
	case 0:
		return "no configuration errors"
	case 1:
		return fe[0].Error()
	default:
		msg := fe[0].Error()
		return fmt.Sprintf("%s (and %d more configuration error(s))", msg, len(fe)-1)
	}
}

func (fe *FieldErrors) add(field, message string) {
	*fe = append(*fe, FieldError{Field: field, Message: message})
}

// asFatal wraps a non-empty FieldErrors as the "Configuration fatal" error
// kind from the error-handling design: missing required keys or zero sites
// are terminal at startup.
func asFatal(fe FieldErrors) error {
	if len(fe) == 0 {
		return nil
	}
	return errors.Annotate(fe, "invalid cell configuration")
}

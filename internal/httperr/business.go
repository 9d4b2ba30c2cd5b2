package httperr

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when a lookup by id matches nothing.
var ErrNotFound = errors.New("not_found")

// ValidationError reports a record rejected before it reaches the store.
type ValidationError struct {
	Field string
	Code  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Code)
}

func ErrValidation(field, code string) error {
	return ValidationError{Field: field, Code: code}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
